package emojis

import "strings"

// Get returns the emoji for a glyph, or nil if there is none.
//
// Glyphs are compared exactly first. If that fails, emoji presentation
// selectors (U+FE0F) are disregarded, so that Get("☹") returns the same emoji
// as Get("☹️").
func Get(glyph string) *Emoji {
	c := emojiCatalog()
	if e, ok := c.byGlyph[glyph]; ok {
		return e
	}
	bare := strings.ReplaceAll(glyph, vs16, "")
	if bare == "" {
		return nil
	}
	if e, ok := c.byGlyph[bare]; ok {
		return e
	}
	return c.byBare[bare]
}

// GetByShortcode returns the emoji for a shortcode, or nil if there is none.
// Shortcodes are case-sensitive and given without colons, e.g. "rocket".
func GetByShortcode(code string) *Emoji {
	return emojiCatalog().byCode[code]
}

// Lookup resolves a query as a glyph or, failing that, as a shortcode.
// A shortcode may be enclosed in colons (":rocket:"). Lookup returns nil if
// the query is neither.
func Lookup(query string) *Emoji {
	if query == "" {
		return nil
	}
	if e := Get(query); e != nil {
		return e
	}
	if len(query) > 2 && query[0] == ':' && query[len(query)-1] == ':' {
		query = query[1 : len(query)-1]
	}
	return GetByShortcode(query)
}
