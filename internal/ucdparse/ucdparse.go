/* Package ucdparse provides a parser for Unicode emoji data files.

The files follow the conventions of the Unicode Character Database, described in
http://www.unicode.org/reports/tr44/: one data item per line, fields separated by
';', and a trailing comment introduced by '#'. Emoji data files additionally
use structural comments to group their items, e.g.

	# group: Smileys & Emotion
	# subgroup: face-smiling
	1F600 ; fully-qualified # 😀 E1.0 grinning face

The first field holds a single code-point, a range of code-points ("1F600..1F64F")
or a sequence of code-points separated by spaces. See
https://www.unicode.org/Public/emoji/latest/emoji-test.txt for an example file.
*/
package ucdparse

import (
	"fmt"
	"strings"
)

// Token represents a single data line of a Unicode emoji data file.
type Token struct {
	LineNo     int      // line number within the input, starting at 1
	CodePoints []rune   // code-point sequence of field #0; for ranges: [from, to]
	IsRange    bool     // field #0 has been a code-point range
	Fields     []string // trimmed fields #1…n
	Comment    string   // rest-of-line comment, without '#'
	Group      string   // enclosing "# group:" heading, if any
	Subgroup   string   // enclosing "# subgroup:" heading, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %q fields=%#v]", token.LineNo, token.Text(),
		token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field #0 are the
// code-points; use Text() or CodePoints to access them.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Text returns the code-point sequence of the data item as a string.
// For range items the result is empty.
func (token *Token) Text() string {
	if token.IsRange {
		return ""
	}
	return string(token.CodePoints)
}

// Range gets the character range from the current data item. For single
// code-points from == to. For code-point sequences Range returns the first
// and the last code-point of the sequence.
func (token *Token) Range() (from, to rune) {
	if len(token.CodePoints) == 0 {
		return 0, 0
	}
	return token.CodePoints[0], token.CodePoints[len(token.CodePoints)-1]
}

// Header returns the value of a header comment of the form "# key: value",
// found before the first data line, or "" if the header line is missing.
// Keys are compared case-insensitively.
func (sc *Scanner) Header(key string) string {
	return sc.headers[strings.ToLower(key)]
}
