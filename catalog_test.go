package emojis

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sampleRecords() []record {
	return []record{
		{1, "\U0001f600", "grinning face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"grinning"}},
		{2, "\U0001f44b", "waving hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"wave"}},
		{3, "\U0001f44b\U0001f3fb", "waving hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1, nil},
		{4, "\U0001f44b\U0001f3fc", "waving hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1, nil},
		{5, "\U0001f44b\U0001f3fd", "waving hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1, nil},
		{6, "\U0001f44b\U0001f3fe", "waving hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1, nil},
		{7, "\U0001f44b\U0001f3ff", "waving hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1, nil},
		{9, "\U0001f347", "grapes", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"grapes"}},
	}
}

func TestBuildCatalog(t *testing.T) {
	c, err := buildCatalog(sampleRecords())
	if err != nil {
		t.Fatal(err)
	}
	if len(c.emojis) != 8 || len(c.byOrder) != 3 || len(c.targets) != 3 {
		t.Errorf("expected 8 emojis, 3 of them default-tone, have %d/%d", len(c.emojis), len(c.byOrder))
	}
	if len(c.byGroup[PeopleAndBody]) != 1 || len(c.byGroup[Flags]) != 0 {
		t.Errorf("expected skin-tone variants not to be group members")
	}
	if c.byCode["wave"] != c.emojis[1] || c.byGlyph["\U0001f44b\U0001f3ff"] != c.emojis[6] {
		t.Errorf("expected indices to share emojis with the table")
	}
	if tones := c.emojis[1].tones; len(tones) != 6 || tones[5] != c.emojis[6] {
		t.Errorf("expected 'waving hand' to have 6 skin tones, has %v", tones)
	}
}

func TestMalformedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojis")
	defer teardown()
	//
	for _, c := range []struct {
		defect string
		modify func([]record) []record
	}{
		{"empty glyph", func(r []record) []record { r[0].glyph = ""; return r }},
		{"duplicate order", func(r []record) []record { r[7].order = 7; return r }},
		{"decreasing order", func(r []record) []record { r[0].order = 10; return r }},
		{"duplicate glyph", func(r []record) []record { r[7].glyph = r[0].glyph; return r }},
		{"unknown group", func(r []record) []record { r[7].group = Group(42); return r }},
		{"unknown skin tone", func(r []record) []record { r[2].tone = SkinTone(9); return r }},
		{"variant without base", func(r []record) []record { r[2].base = -1; return r }},
		{"base is no default tone", func(r []record) []record { r[2].base = 0; return r }},
		{"base reference without skin tone", func(r []record) []record { r[7].base = 1; return r }},
		{"duplicate skin tone", func(r []record) []record { r[3].tone = ToneLight; return r }},
		{"missing skin tone", func(r []record) []record { return append(r[:6], r[7]) }},
		{"empty shortcode", func(r []record) []record { r[7].codes = []string{""}; return r }},
	} {
		_, err := buildCatalog(c.modify(sampleRecords()))
		if err == nil {
			t.Errorf("expected table with %s to be rejected", c.defect)
			continue
		}
		if !errors.Is(err, ErrMalformedTable) {
			t.Errorf("expected error for %s to be ErrMalformedTable, is %v", c.defect, err)
		}
		t.Logf("%s: %v", c.defect, err)
	}
}

func TestDuplicateShortcode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojis")
	defer teardown()
	//
	records := sampleRecords()
	records[7].codes = []string{"grapes", "grinning"}
	c, err := buildCatalog(records)
	if err != nil {
		t.Fatalf("expected duplicate shortcode not to be fatal, is %v", err)
	}
	if c.byCode["grinning"] != c.emojis[7] {
		t.Errorf("expected last emoji with shortcode 'grinning' to win, is %q", c.byCode["grinning"].name)
	}
}

func TestSkinTones(t *testing.T) {
	wave := Lookup("wave")
	tone, ok := wave.SkinTone()
	if !ok || tone != ToneDefault {
		t.Fatalf("expected 'waving hand' to be of default skin tone, is %v", tone)
	}
	tones := wave.SkinTones()
	if len(tones) != 6 || tones[0] != wave {
		t.Fatalf("expected 6 skin tones, starting with 'waving hand', have %v", tones)
	}
	for i, v := range tones {
		expected := ToneDefault + SkinTone(i)
		if tone, ok := v.SkinTone(); !ok || tone != expected {
			t.Errorf("expected variant #%d to have skin tone %s, has %s", i, expected, tone)
		}
		if v.WithSkinTone(ToneDefault) != wave || wave.WithSkinTone(expected) != v {
			t.Errorf("expected skin-tone variants to link to each other")
		}
		if Lookup(v.String()) != v {
			t.Errorf("expected variant %q to be found by glyph", v.Name())
		}
		if v.Group() != PeopleAndBody {
			t.Errorf("expected variant %q to be in group People & Body", v.Name())
		}
	}
	dark := wave.WithSkinTone(ToneDark)
	if dark.Name() != "waving hand: dark skin tone" || dark.String() != "\U0001f44b\U0001f3ff" {
		t.Errorf("expected dark skin tone variant 👋🏿, have %s (%q)", dark, dark.Name())
	}
	if dark.Shortcode() != "" {
		t.Errorf("expected skin-tone variants to have no shortcode, have %q", dark.Shortcode())
	}
	if wave.WithSkinTone(NoSkinTone) != nil || wave.WithSkinTone(SkinTone(7)) != nil {
		t.Errorf("expected invalid skin tones to yield nil")
	}
	rocket := Lookup("rocket")
	if _, ok := rocket.SkinTone(); ok || rocket.SkinTones() != nil || rocket.WithSkinTone(ToneLight) != nil {
		t.Errorf("expected rocket not to support skin tones")
	}
	if ToneMediumDark.String() != "medium-dark" {
		t.Errorf("expected skin tone to print as 'medium-dark', is %q", ToneMediumDark.String())
	}
}

func TestSkinToneCount(t *testing.T) {
	c := emojiCatalog()
	defaults, variants := 0, 0
	for _, e := range c.emojis {
		switch tone, _ := e.SkinTone(); tone {
		case NoSkinTone:
		case ToneDefault:
			defaults++
		default:
			variants++
		}
	}
	if defaults != 323 || variants != 5*323 {
		t.Errorf("expected 323 emojis with 5 variants each, have %d and %d", defaults, variants)
	}
}
