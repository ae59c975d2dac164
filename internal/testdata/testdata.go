/*
Package testdata holds the upstream data files the emoji table is generated
from.

  emoji-test.txt   Unicode emoji keyboard/display test data (UTS #51), which
                   lists every emoji in recommended order, with group and name
  shortcodes.txt   shortcode aliases, keyed by fully-qualified code-points

The files are embedded, so generators and tests do not depend on the
working directory.
*/
package testdata

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
)

// EmojiTest is the content of emoji-test.txt.
//go:embed emoji-test.txt
var EmojiTest []byte

// Shortcodes is the content of shortcodes.txt.
//go:embed shortcodes.txt
var Shortcodes []byte

// Reader returns a reader for one of the embedded data files.
func Reader(file string) (io.Reader, error) {
	switch file {
	case "emoji-test.txt":
		return bytes.NewReader(EmojiTest), nil
	case "shortcodes.txt":
		return bytes.NewReader(Shortcodes), nil
	}
	return nil, fmt.Errorf("no such data file: %s", file)
}
