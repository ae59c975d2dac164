package emojis

import "strconv"

// SkinTone identifies the skin-tone variant of an emoji.
type SkinTone int8

// Skin tones. ToneDefault is the tone of the unmodified, yellow emoji. The
// others correspond to the Fitzpatrick modifiers U+1F3FB…U+1F3FF.
const (
	NoSkinTone SkinTone = iota // emoji does not support skin tones
	ToneDefault
	ToneLight
	ToneMediumLight
	ToneMedium
	ToneMediumDark
	ToneDark
)

var skinToneNames = [...]string{
	"none", "default", "light", "medium-light", "medium", "medium-dark", "dark",
}

func (t SkinTone) String() string {
	if t < 0 || int(t) >= len(skinToneNames) {
		return "SkinTone(" + strconv.Itoa(int(t)) + ")"
	}
	return skinToneNames[t]
}

// variants is the number of skin-tone variants of an emoji supporting skin tones.
const variants = int(ToneDark-ToneDefault) + 1

// UnicodeVersion is the version of Unicode an emoji first appeared in.
// Emojis from Japanese carrier sets have version 0.6 or 0.7.
type UnicodeVersion struct {
	Major, Minor int
}

// Less is true if v is an earlier version than other.
func (v UnicodeVersion) Less(other UnicodeVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

func (v UnicodeVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}
