package emojis

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/emojis/fuzzy"
)

// ErrMalformedTable is returned if the emoji table violates an integrity
// constraint. This is a defect of the generated table, not of a query.
var ErrMalformedTable = errors.New("malformed emoji table")

// record is an entry of the generated emoji table.
type record struct {
	order   int
	glyph   string
	name    string
	group   Group
	version UnicodeVersion
	tone    SkinTone
	base    int // table index of the default-tone variant, or -1
	codes   []string
}

// vs16 is the emoji presentation selector U+FE0F.
const vs16 = "\ufe0f"

// catalog holds the emojis together with their indices. It is built once and
// never modified afterwards.
type catalog struct {
	emojis  []*Emoji          // all records, in table order
	byOrder []*Emoji          // default-tone emojis, in recommended order
	byGlyph map[string]*Emoji // exact glyph
	byBare  map[string]*Emoji // glyph without VS16
	byCode  map[string]*Emoji // shortcode, without colons
	byGroup [][]*Emoji        // indexed by Group, default-tone emojis only
	targets [][]fuzzy.Target  // parallel to byOrder: name, then shortcodes
}

var theCatalog *catalog
var catalogOnce sync.Once

// emojiCatalog returns the process-wide catalog, building it on first use.
// A malformed table is a build defect; the program cannot continue.
func emojiCatalog() *catalog {
	catalogOnce.Do(func() {
		c, err := buildCatalog(emojiRecords[:])
		if err != nil {
			tracer().Errorf("%v", err)
			panic(err)
		}
		tracer().Infof("emoji catalog for Unicode %s: %d emojis, %d shortcodes",
			UnicodeEmojiVersion, len(c.emojis), len(c.byCode))
		theCatalog = c
	})
	return theCatalog
}

func malformed(rec record, format string, args ...interface{}) error {
	return fmt.Errorf("%w: record %d (%q): %s", ErrMalformedTable, rec.order, rec.name,
		fmt.Sprintf(format, args...))
}

// buildCatalog creates the emojis for a table of records and indexes them.
// Records have to be in strictly ascending order. Skin-tone variants have to
// follow their default-tone record.
func buildCatalog(records []record) (*catalog, error) {
	groupCount := len(_Group_index) - 1
	c := &catalog{
		emojis:  make([]*Emoji, len(records)),
		byGlyph: make(map[string]*Emoji, len(records)),
		byBare:  make(map[string]*Emoji, len(records)),
		byCode:  make(map[string]*Emoji, len(records)),
		byGroup: make([][]*Emoji, groupCount),
	}
	prev := 0
	for i, rec := range records {
		switch {
		case rec.glyph == "":
			return nil, malformed(rec, "empty glyph")
		case rec.order <= prev:
			return nil, malformed(rec, "duplicate or non-increasing order after %d", prev)
		case rec.group < 0 || int(rec.group) >= groupCount:
			return nil, malformed(rec, "unknown group %d", rec.group)
		case rec.tone < NoSkinTone || rec.tone > ToneDark:
			return nil, malformed(rec, "unknown skin tone %d", rec.tone)
		}
		prev = rec.order
		if _, dup := c.byGlyph[rec.glyph]; dup {
			return nil, malformed(rec, "duplicate glyph %q", rec.glyph)
		}
		e := &Emoji{
			glyph:      rec.glyph,
			name:       rec.name,
			group:      rec.group,
			order:      rec.order,
			version:    rec.version,
			tone:       rec.tone,
			shortcodes: rec.codes,
		}
		if err := c.linkSkinTone(e, rec, i); err != nil {
			return nil, err
		}
		c.emojis[i] = e
		c.byGlyph[e.glyph] = e
		if bare := strings.ReplaceAll(e.glyph, vs16, ""); bare != e.glyph {
			if _, taken := c.byBare[bare]; !taken {
				c.byBare[bare] = e
			}
		}
		for _, code := range rec.codes {
			if code == "" {
				return nil, malformed(rec, "empty shortcode")
			}
			if other, dup := c.byCode[code]; dup {
				tracer().Errorf("emoji table: shortcode %q of %q also used for %q",
					code, other.name, e.name)
			}
			c.byCode[code] = e
		}
		if e.tone <= ToneDefault {
			c.byOrder = append(c.byOrder, e)
			c.byGroup[e.group] = append(c.byGroup[e.group], e)
		}
	}
	for _, e := range c.byOrder {
		if e.tone == ToneDefault {
			for _, v := range e.tones {
				if v == nil {
					return nil, fmt.Errorf("%w: %q lacks skin-tone variants", ErrMalformedTable, e.name)
				}
			}
		}
	}
	c.prepareTargets()
	return c, nil
}

// linkSkinTone connects a skin-tone variant with its default-tone sibling,
// which has to be an earlier record.
func (c *catalog) linkSkinTone(e *Emoji, rec record, inx int) error {
	switch e.tone {
	case NoSkinTone:
		if rec.base >= 0 {
			return malformed(rec, "base reference without skin tone")
		}
		return nil
	case ToneDefault:
		if rec.base >= 0 {
			return malformed(rec, "default-tone emoji references base %d", rec.base)
		}
		e.tones = make([]*Emoji, variants)
		e.tones[0] = e
		return nil
	}
	if rec.base < 0 || rec.base >= inx || c.emojis[rec.base].tone != ToneDefault {
		return malformed(rec, "invalid skin-tone base %d", rec.base)
	}
	base := c.emojis[rec.base]
	slot := int(e.tone - ToneDefault)
	if base.tones[slot] != nil {
		return malformed(rec, "duplicate %s skin tone for %q", e.tone, base.name)
	}
	base.tones[slot] = e
	e.tones = base.tones
	return nil
}

// prepareTargets folds names and shortcodes for searching, once per catalog.
func (c *catalog) prepareTargets() {
	c.targets = make([][]fuzzy.Target, len(c.byOrder))
	for i, e := range c.byOrder {
		t := make([]fuzzy.Target, 0, 1+len(e.shortcodes))
		t = append(t, fuzzy.NewTarget(e.name))
		for _, code := range e.shortcodes {
			t = append(t, fuzzy.NewTarget(code))
		}
		c.targets[i] = t
	}
}
