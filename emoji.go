package emojis

// Emoji is an entry of the emoji catalog. Emojis are immutable and shared:
// every function of this package returns the same *Emoji for the same entry,
// so emojis may be compared by pointer.
type Emoji struct {
	glyph      string
	name       string
	group      Group
	order      int
	version    UnicodeVersion
	tone       SkinTone
	shortcodes []string
	tones      []*Emoji // all skin-tone variants, default first; shared between siblings
}

// String returns the emoji glyph.
func (e *Emoji) String() string {
	return e.glyph
}

// Name returns the CLDR short name of the emoji, e.g. "face with raised eyebrow".
func (e *Emoji) Name() string {
	return e.name
}

// Group returns the group the emoji belongs to.
func (e *Emoji) Group() Group {
	return e.group
}

// Order is the position of the emoji in Unicode recommended order, starting at 1.
func (e *Emoji) Order() int {
	return e.order
}

// UnicodeVersion returns the version of Unicode the emoji first appeared in.
func (e *Emoji) UnicodeVersion() UnicodeVersion {
	return e.version
}

// Shortcode returns the canonical shortcode of the emoji, without
// surrounding colons, or "" if the emoji has none.
func (e *Emoji) Shortcode() string {
	if len(e.shortcodes) == 0 {
		return ""
	}
	return e.shortcodes[0]
}

// Shortcodes returns all shortcodes of the emoji, canonical one first.
func (e *Emoji) Shortcodes() []string {
	if len(e.shortcodes) == 0 {
		return nil
	}
	codes := make([]string, len(e.shortcodes))
	copy(codes, e.shortcodes)
	return codes
}

// SkinTone returns the skin tone of the emoji. ok is false if the emoji does
// not support skin tones.
func (e *Emoji) SkinTone() (tone SkinTone, ok bool) {
	return e.tone, e.tone != NoSkinTone
}

// SkinTones returns all skin-tone variants of the emoji, starting with the
// default-tone one. For emojis not supporting skin tones it returns nil.
func (e *Emoji) SkinTones() []*Emoji {
	if e.tones == nil {
		return nil
	}
	tones := make([]*Emoji, len(e.tones))
	copy(tones, e.tones)
	return tones
}

// WithSkinTone returns the variant of the emoji with skin tone t, or nil if
// the emoji does not support skin tones or t is not a valid tone.
func (e *Emoji) WithSkinTone(t SkinTone) *Emoji {
	if e.tones == nil || t < ToneDefault || t > ToneDark {
		return nil
	}
	return e.tones[t-ToneDefault]
}
