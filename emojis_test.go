package emojis

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLookupScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojis")
	defer teardown()
	//
	e := Lookup("\U0001f928")
	if e == nil {
		t.Fatalf("expected to find 🤨, did not")
	}
	if e.Name() != "face with raised eyebrow" {
		t.Errorf("expected 🤨 to be named 'face with raised eyebrow', is %q", e.Name())
	}
	if e.Shortcode() != "raised_eyebrow" {
		t.Errorf("expected shortcode of 🤨 to be 'raised_eyebrow', is %q", e.Shortcode())
	}
	if e.Group() != SmileysAndEmotion {
		t.Errorf("expected 🤨 to be in group %s, is in %s", SmileysAndEmotion, e.Group())
	}
	for _, q := range []string{"raised_eyebrow", ":raised_eyebrow:"} {
		if other := Lookup(q); other != e {
			t.Errorf("expected Lookup(%q) to resolve to 🤨, is %v", q, other)
		}
	}
}

func TestLookupAbsent(t *testing.T) {
	for _, q := range []string{"", ":", "::", "::rocket::", "Rocket", "rocket ", "no such emoji", "\ufe0f"} {
		if e := Lookup(q); e != nil {
			t.Errorf("expected Lookup(%q) to be nil, is %v (%s)", q, e, e.Name())
		}
	}
	if e := Get(""); e != nil {
		t.Errorf("expected Get(\"\") to be nil, is %v", e)
	}
	if e := GetByShortcode(""); e != nil {
		t.Errorf("expected GetByShortcode(\"\") to be nil, is %v", e)
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	c := emojiCatalog()
	for _, e := range c.emojis {
		if found := Lookup(e.String()); found != e {
			t.Fatalf("expected Lookup(%q) to find %q, found %v", e.String(), e.Name(), found)
		}
		if found := Get(e.String()); found != e {
			t.Fatalf("expected Get(%q) to find %q, found %v", e.String(), e.Name(), found)
		}
	}
}

func TestShortcodeRoundTrip(t *testing.T) {
	c := emojiCatalog()
	n := 0
	for _, e := range c.emojis {
		for _, code := range e.Shortcodes() {
			n++
			if found := Lookup(code); found != e {
				t.Errorf("expected Lookup(%q) to find %q, found %v", code, e.Name(), found)
			}
			if found := Lookup(":" + code + ":"); found != e {
				t.Errorf("expected Lookup(\":%s:\") to find %q, found %v", code, e.Name(), found)
			}
		}
	}
	if n != len(c.byCode) {
		t.Errorf("expected %d distinct shortcodes, have %d", n, len(c.byCode))
	}
	if e := GetByShortcode("+1"); e == nil || e.Name() != "thumbs up" {
		t.Errorf("expected shortcode '+1' to denote 'thumbs up', is %v", e)
	} else if codes := e.Shortcodes(); len(codes) != 2 || codes[1] != "thumbsup" {
		t.Errorf("expected 'thumbs up' to have shortcodes [+1 thumbsup], has %v", codes)
	}
}

func TestShortcodesAreCopied(t *testing.T) {
	e := GetByShortcode("rocket")
	codes := e.Shortcodes()
	codes[0] = "spaceship"
	if e.Shortcode() != "rocket" {
		t.Errorf("expected modification of shortcodes to leave emoji untouched")
	}
}

func TestPresentationSelector(t *testing.T) {
	frowning := Get("\u2639\ufe0f")
	if frowning == nil || frowning.Name() != "frowning face" {
		t.Fatalf("expected to find 'frowning face', have %v", frowning)
	}
	if e := Get("\u2639"); e != frowning {
		t.Errorf("expected Get to disregard missing U+FE0F, found %v", e)
	}
	if e := Lookup("\u2639"); e != frowning {
		t.Errorf("expected Lookup to disregard missing U+FE0F, found %v", e)
	}
	rocket := Get("\U0001f680")
	if e := Get("\U0001f680\ufe0f"); e != rocket {
		t.Errorf("expected Get to disregard extra U+FE0F, found %v", e)
	}
}

func TestIter(t *testing.T) {
	it := Iter()
	if it.Emoji() != nil {
		t.Errorf("expected no current emoji before first call to Next")
	}
	all := Collect(it)
	if len(all) != it.Len() || len(all) != 1907 {
		t.Fatalf("expected iteration over 1907 emojis, have %d (Len=%d)", len(all), it.Len())
	}
	if it.Next() || it.Emoji() != nil {
		t.Errorf("expected exhausted iterator to stay exhausted")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Order() >= all[i].Order() {
			t.Fatalf("expected iteration in ascending order, %q (%d) precedes %q (%d)",
				all[i-1].Name(), all[i-1].Order(), all[i].Name(), all[i].Order())
		}
	}
	for _, e := range all {
		if tone, ok := e.SkinTone(); ok && tone != ToneDefault {
			t.Errorf("expected iteration to skip skin-tone variants, have %q", e.Name())
		}
	}
	it.Reset()
	again := Collect(it)
	other := Collect(Iter())
	for i := range all {
		if again[i] != all[i] || other[i] != all[i] {
			t.Fatalf("expected repeated iteration to yield identical sequences, differs at %d", i)
		}
	}
	if all[0].String() != "\U0001f600" {
		t.Errorf("expected iteration to start with 😀, starts with %s", all[0])
	}
}

func TestGroups(t *testing.T) {
	groups := Groups()
	if len(groups) != 10 || groups[0] != SmileysAndEmotion || groups[9] != Flags {
		t.Fatalf("expected 10 groups from Smileys & Emotion to Flags, have %v", groups)
	}
	if FoodAndDrink.String() != "Food & Drink" {
		t.Errorf("expected group name 'Food & Drink', have %q", FoodAndDrink.String())
	}
	if Group(99).String() != "Group(99)" {
		t.Errorf("expected unknown group to print as 'Group(99)', is %q", Group(99).String())
	}
	if Group(-1).Emojis().Next() || Group(99).Emojis().Len() != 0 {
		t.Errorf("expected unknown groups to be empty")
	}
}

func TestComponentGroup(t *testing.T) {
	swatch := Get("🏽")
	if swatch == nil || swatch.Group() != Component || swatch.Name() != "medium skin tone" {
		t.Fatalf("expected 🏽 to be the 'medium skin tone' component, is %v", swatch)
	}
	if _, ok := swatch.SkinTone(); ok {
		t.Errorf("expected skin tone swatch not to carry a skin tone itself")
	}
	if n := Component.Emojis().Len(); n != 9 {
		t.Errorf("expected 9 components, have %d", n)
	}
	found := false
	for _, e := range Collect(Search("medium skin tone")) {
		if e == swatch {
			found = true
		}
	}
	if !found {
		t.Errorf("expected search to find components")
	}
}

func TestGroupUnion(t *testing.T) {
	seen := make(map[*Emoji]bool)
	for _, g := range Groups() {
		it := g.Emojis()
		if it.Len() == 0 {
			t.Errorf("expected group %s to be non-empty", g)
		}
		prev := 0
		for it.Next() {
			e := it.Emoji()
			if e.Group() != g {
				t.Errorf("expected %q to be in group %s, is in %s", e.Name(), g, e.Group())
			}
			if e.Order() <= prev {
				t.Errorf("expected group %s in ascending order, %q is out of order", g, e.Name())
			}
			prev = e.Order()
			if seen[e] {
				t.Errorf("%q is member of more than one group", e.Name())
			}
			seen[e] = true
		}
	}
	it := Iter()
	for it.Next() {
		if !seen[it.Emoji()] {
			t.Errorf("%q is not member of any group", it.Emoji().Name())
		}
	}
	if len(seen) != it.Len() {
		t.Errorf("expected groups to hold %d emojis, hold %d", it.Len(), len(seen))
	}
}

func TestFoodAndDrink(t *testing.T) {
	it := FoodAndDrink.Emojis()
	if !it.Next() {
		t.Fatalf("expected group Food & Drink to be non-empty")
	}
	if it.Emoji().String() != "\U0001f347" {
		t.Errorf("expected Food & Drink to start with 🍇, starts with %s", it.Emoji())
	}
	if it.Emoji() != Lookup("grapes") {
		t.Errorf("expected first food to be 'grapes'")
	}
}

func TestUnicodeVersion(t *testing.T) {
	if UnicodeEmojiVersion != "15.1" {
		t.Errorf("expected Unicode emoji version 15.1, is %s", UnicodeEmojiVersion)
	}
	rocket := Lookup("rocket")
	if v := rocket.UnicodeVersion(); v != (UnicodeVersion{0, 6}) || v.String() != "0.6" {
		t.Errorf("expected rocket to be of version 0.6, is %s", v)
	}
	eyebrow := Lookup("raised_eyebrow")
	if !rocket.UnicodeVersion().Less(eyebrow.UnicodeVersion()) {
		t.Errorf("expected version %s to be less than %s", rocket.UnicodeVersion(), eyebrow.UnicodeVersion())
	}
	for _, c := range [][2]UnicodeVersion{
		{{0, 6}, {0, 7}},
		{{0, 7}, {1, 0}},
		{{13, 1}, {14, 0}},
		{{15, 0}, {15, 1}},
	} {
		if !c[0].Less(c[1]) || c[1].Less(c[0]) {
			t.Errorf("expected %s < %s", c[0], c[1])
		}
	}
	if (UnicodeVersion{5, 0}).Less(UnicodeVersion{5, 0}) {
		t.Errorf("expected version not to be less than itself")
	}
}
