/*
Generator for the emoji table of package emojis.

Content

The catalog of package emojis is generated from two companion files, both
embedded in package internal/testdata:

  emoji-test.txt   Unicode emoji test data, listing every emoji in
                   recommended order, with its group and CLDR short name
  shortcodes.txt   shortcode aliases, keyed by fully-qualified code-points

Only fully-qualified emojis and components are included. Skin-tone variants
are linked to their default-tone emoji; variants combining two different
skin tones are left out.

Usage

The generator has two options, a "verbose" flag and the name of the
output file.

   generator [-v] [-o emojitable.go]

It is designed to be called from the root folder of the module, usually
with "go generate".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"regexp"
	"runtime"
	"strings"
	"text/template"
	"time"

	"os"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/emojis/internal/testdata"
	"github.com/npillmayer/emojis/internal/ucdparse"
)

var logger = log.New(os.Stderr, "emoji generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// entry is a single emoji record of the generated table.
type entry struct {
	Order        int    // 1-based position in the table
	Glyph        string // fully-qualified code-point sequence
	Name         string
	Group        string // identifier of the group constant
	Major, Minor int    // Unicode emoji version the emoji first appeared in
	Tone         string // identifier of the skin-tone constant
	Base         int    // table index of the default-tone variant, or -1
	Codes        []string
	basename     string // name without skin-tone qualifier
}

// Literal formats the entry as a Go composite literal of type record.
func (e *entry) Literal() string {
	return fmt.Sprintf("{%d, %+q, %q, %s, UnicodeVersion{%d, %d}, %s, %d, %s}",
		e.Order, e.Glyph, e.Name, e.Group, e.Major, e.Minor, e.Tone, e.Base,
		codesLiteral(e.Codes))
}

func codesLiteral(codes []string) string {
	if len(codes) == 0 {
		return "nil"
	}
	q := make([]string, len(codes))
	for i, c := range codes {
		q[i] = fmt.Sprintf("%q", c)
	}
	return "[]string{" + strings.Join(q, ", ") + "}"
}

type emojiTable struct {
	Version string   // Unicode emoji version of the data file
	Groups  []string // Unicode group names, in order of appearance
	Entries *arraylist.List
}

var toneIdents = map[string]string{
	"light":        "ToneLight",
	"medium-light": "ToneMediumLight",
	"medium":       "ToneMedium",
	"medium-dark":  "ToneMediumDark",
	"dark":         "ToneDark",
}

var skinToneQualifier = regexp.MustCompile(`(: |, )(light|medium-light|medium|medium-dark|dark) skin tone(, )?`)

// splitSkinTone separates the skin-tone qualifier from the name of a
// skin-tone variant, e.g.
//
//   "waving hand: light skin tone"          -> "light", "waving hand"
//   "woman: medium skin tone, beard"        -> "medium", "woman: beard"
//   "man golfing: dark skin tone"           -> "dark", "man golfing"
func splitSkinTone(name string) (tone, basename string, ok bool) {
	m := skinToneQualifier.FindStringSubmatchIndex(name)
	if m == nil {
		return "", name, false
	}
	sep, tail := name[m[2]:m[3]], m[6] >= 0
	basename = name[:m[0]]
	if sep == ": " && tail {
		basename += ": "
	}
	basename += name[m[1]:]
	return name[m[4]:m[5]], basename, true
}

// groupIdent derives the identifier of a group constant from its
// Unicode name, e.g. "Food & Drink" -> "FoodAndDrink".
func groupIdent(group string) string {
	return strings.ReplaceAll(strings.ReplaceAll(group, "&", "And"), " ", "")
}

// makeEntry creates an entry from a line of emoji-test.txt, e.g.
//
//   1F44B 1F3FB ; fully-qualified # 👋🏻 E1.0 waving hand: light skin tone
//
// It returns nil for emojis combining more than one skin tone.
func makeEntry(token *ucdparse.Token) (*entry, error) {
	glyph, rest, ok1 := strings.Cut(token.Comment, " ")
	version, name, ok2 := strings.Cut(rest, " ")
	if !ok1 || !ok2 || glyph != token.Text() {
		return nil, fmt.Errorf("line %d: malformed comment %q", token.LineNo, token.Comment)
	}
	e := &entry{
		Glyph: glyph,
		Name:  strings.TrimSpace(name),
		Group: groupIdent(token.Group),
		Tone:  "NoSkinTone",
		Base:  -1,
	}
	if _, err := fmt.Sscanf(version, "E%d.%d", &e.Major, &e.Minor); err != nil {
		return nil, fmt.Errorf("line %d: malformed version %q: %w", token.LineNo, version, err)
	}
	if token.Group == "Component" {
		return e, nil // skin-tone modifiers themselves
	}
	switch strings.Count(e.Name, "skin tone") {
	case 0:
		return e, nil
	case 1:
		tone, basename, ok := splitSkinTone(e.Name)
		if !ok {
			return nil, fmt.Errorf("line %d: cannot find skin tone in %q", token.LineNo, e.Name)
		}
		e.Tone, e.basename = toneIdents[tone], basename
		return e, nil
	}
	return nil, nil
}

// Load the Unicode emoji test data: emoji-test.txt
func loadEmojiTest() (*emojiTable, error) {
	if verbose {
		logger.Printf("reading emoji-test.txt")
	}
	defer timeTrack(time.Now(), "loading emoji-test.txt")

	parser, err := ucdparse.New(bytes.NewReader(testdata.EmojiTest))
	if err != nil {
		return nil, err
	}
	table := &emojiTable{Entries: arraylist.New()}
	for parser.Next() {
		status := parser.Token.Field(1)
		if status != "fully-qualified" && status != "component" {
			continue
		}
		e, err := makeEntry(parser.Token)
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue
		}
		if n := len(table.Groups); n == 0 || table.Groups[n-1] != parser.Token.Group {
			table.Groups = append(table.Groups, parser.Token.Group)
		}
		table.Entries.Add(e)
	}
	if err = parser.Err(); err != nil {
		return nil, err
	}
	if table.Version = parser.Header("Version"); table.Version == "" {
		return nil, fmt.Errorf("emoji-test.txt has no version header")
	}
	table.Entries = linkSkinTones(table.Entries)
	return table, nil
}

// linkSkinTones numbers the entries and links skin-tone variants to their
// default-tone entry. Variants without a default-tone entry are dropped.
func linkSkinTones(entries *arraylist.List) *arraylist.List {
	defaults := make(map[string]int)
	linked := arraylist.New()
	it := entries.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		if e.basename == "" {
			if _, seen := defaults[e.Name]; !seen {
				defaults[e.Name] = linked.Size()
			}
		} else if base, ok := defaults[e.basename]; ok {
			e.Base = base
			b, _ := linked.Get(base)
			b.(*entry).Tone = "ToneDefault"
		} else {
			if verbose {
				logger.Printf("dropping %q: no default-tone emoji", e.Name)
			}
			continue
		}
		e.Order = linked.Size() + 1
		linked.Add(e)
	}
	return linked
}

// Load shortcode aliases: shortcodes.txt
func loadShortcodes() (map[string][]string, error) {
	if verbose {
		logger.Printf("reading shortcodes.txt")
	}
	defer timeTrack(time.Now(), "loading shortcodes.txt")

	codes := make(map[string][]string)
	err := ucdparse.Parse(bytes.NewReader(testdata.Shortcodes), func(token *ucdparse.Token) {
		for _, code := range token.Fields {
			if code != "" {
				codes[token.Text()] = append(codes[token.Text()], code)
			}
		}
	})
	return codes, err
}

func attachShortcodes(table *emojiTable, codes map[string][]string) error {
	attached := 0
	it := table.Entries.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		if c, ok := codes[e.Glyph]; ok {
			e.Codes = c
			attached++
		}
	}
	if attached != len(codes) {
		return fmt.Errorf("shortcodes.txt has %d entries for unknown emojis", len(codes)-attached)
	}
	return nil
}

// --- Templates --------------------------------------------------------

var header = `package emojis

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"strconv"
)

// UnicodeEmojiVersion is the version of the Unicode emoji data the catalog
// has been generated from.
const UnicodeEmojiVersion = "{{.}}"
`

var templateGroupConsts = `
// Group is one of the emoji groups of the Unicode recommended ordering.
type Group int

// These are all the emoji groups, in recommended order.
const ({{range $i, $g := .}}
	{{ident $g}}{{if eq $i 0}} Group = iota{{end}}{{end}}
)
`

var templateGroupStringer = `
const _Group_name = "{{range .}}{{.}}{{end}}"

var _Group_index = [...]uint16{0{{startinxs .}}}

// String returns the Unicode name of a group, e.g. "Food & Drink".
func (g Group) String() string {
	if g < 0 || g >= Group(len(_Group_index)-1) {
		return "Group(" + strconv.FormatInt(int64(g), 10) + ")"
	}
	return _Group_name[_Group_index[g]:_Group_index[g+1]]
}
`

var templateRecords = `
// emojiRecords holds all emojis, including skin-tone variants, in
// recommended order.
var emojiRecords = [...]record{
{{range .}}	{{.Literal}},
{{end}}}
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"ident": groupIdent,
	"startinxs": func(str []string) string {
		out := ""
		total := 0
		for _, s := range str {
			total += len(s)
			out += fmt.Sprintf(", %d", total)
		}
		return out
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generate(w *bufio.Writer, table *emojiTable) {
	defer timeTrack(time.Now(), "generate emoji table")
	t := makeTemplate("Header", header)
	checkFatal(t.Execute(w, table.Version))
	t = makeTemplate("Emoji groups", templateGroupConsts)
	checkFatal(t.Execute(w, table.Groups))
	t = makeTemplate("Emoji groups stringer", templateGroupStringer)
	checkFatal(t.Execute(w, table.Groups))
	t = makeTemplate("Emoji records", templateRecords)
	checkFatal(t.Execute(w, table.Entries.Values()))
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	outfile := flag.String("o", "emojitable.go", "output file")
	flag.Parse()
	verbose = *doVerbose
	table, err := loadEmojiTest()
	checkFatal(err)
	codes, err := loadShortcodes()
	checkFatal(err)
	checkFatal(attachShortcodes(table, codes))
	if verbose {
		logger.Printf("loaded %d emojis in %d groups, Unicode version %s\n",
			table.Entries.Size(), len(table.Groups), table.Version)
	}
	f, ioerr := os.Create(*outfile)
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	generate(w, table)
	checkFatal(w.Flush())
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
