package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestSplitSkinTone(t *testing.T) {
	for _, c := range []struct {
		name, tone, basename string
	}{
		{"waving hand: light skin tone", "light", "waving hand"},
		{"woman: medium skin tone, beard", "medium", "woman: beard"},
		{"man golfing: medium-dark skin tone", "medium-dark", "man golfing"},
		{"couple with heart: woman, man, dark skin tone", "dark", "couple with heart: woman, man"},
		{"person: medium-light skin tone, white hair", "medium-light", "person: white hair"},
	} {
		tone, basename, ok := splitSkinTone(c.name)
		if !ok || tone != c.tone || basename != c.basename {
			t.Errorf("expected %q to split into %q + %q, is %q + %q", c.name, c.basename, c.tone,
				basename, tone)
		}
	}
	if _, _, ok := splitSkinTone("grinning face"); ok {
		t.Errorf("expected 'grinning face' to have no skin tone")
	}
}

func TestGroupIdent(t *testing.T) {
	if id := groupIdent("Smileys & Emotion"); id != "SmileysAndEmotion" {
		t.Errorf("expected identifier SmileysAndEmotion, is %s", id)
	}
	if id := groupIdent("Flags"); id != "Flags" {
		t.Errorf("expected identifier Flags, is %s", id)
	}
}

func TestLoadEmojiTest(t *testing.T) {
	table, err := loadEmojiTest()
	if err != nil {
		t.Fatal(err)
	}
	if table.Version != "15.1" || len(table.Groups) != 10 || table.Entries.Size() != 3522 {
		t.Errorf("expected 3522 emojis in 10 groups for version 15.1, have %d in %d for %s",
			table.Entries.Size(), len(table.Groups), table.Version)
	}
	codes, err := loadShortcodes()
	if err != nil {
		t.Fatal(err)
	}
	if err = attachShortcodes(table, codes); err != nil {
		t.Fatal(err)
	}
	v, _ := table.Entries.Get(168)
	wave := v.(*entry)
	if wave.Name != "waving hand" || wave.Tone != "ToneDefault" || wave.Codes[0] != "wave" {
		t.Errorf("expected entry #168 to be 'waving hand' with skin tones, is %+v", wave)
	}
	v, _ = table.Entries.Get(169)
	if light := v.(*entry); light.Base != 168 || light.Tone != "ToneLight" || light.Order != 170 {
		t.Errorf("expected entry #169 to be a skin-tone variant of #168, is %+v", light)
	}
}

func TestGenerate(t *testing.T) {
	table, err := loadEmojiTest()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	generate(w, table)
	w.Flush()
	out := buf.String()
	for _, expected := range []string{
		`const UnicodeEmojiVersion = "15.1"`,
		"\tSmileysAndEmotion Group = iota\n\tPeopleAndBody\n",
		`var _Group_index = [...]uint16{0, 17, 30, 39, 55, 67, 82, 92, 99, 106, 111}`,
		`{169, "\U0001f44b", "waving hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, nil},`,
		`{2331, "\U0001f347", "grapes", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, nil},`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected generated table to contain %q", expected)
		}
	}
}
