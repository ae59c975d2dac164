package emojis

import (
	"testing"

	"github.com/npillmayer/emojis/fuzzy"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func firstMatch(t *testing.T, s Searcher, query string) *Emoji {
	m := s.Search(query)
	if !m.Next() {
		t.Fatalf("expected search for %q to find something, did not", query)
	}
	t.Logf("search %q: %s %q (score %d)", query, m.Emoji(), m.Emoji().Name(), m.Score())
	return m.Emoji()
}

func TestSearchScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojis")
	defer teardown()
	//
	for query, name := range map[string]string{
		"rket":           "rocket",
		"Rocket":         "rocket",
		"pinata":         "piñata",
		"tada":           "party popper",
		"heart":          "red heart",
		"thumbs":         "thumbs up",
		"raised eyebrow": "face with raised eyebrow",
		"cote":           "flag: Côte d’Ivoire",
	} {
		if e := firstMatch(t, DefaultSearcher, query); e.Name() != name {
			t.Errorf("expected best match for %q to be %q, is %q", query, name, e.Name())
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	m := Search("xyzzyq")
	if m.Len() != 0 || m.Next() || m.Emoji() != nil {
		t.Errorf("expected no matches for 'xyzzyq'")
	}
	if len(Collect(Search("xyzzyq"))) != 0 {
		t.Errorf("expected no matches for 'xyzzyq'")
	}
}

func TestSearchMarksOnly(t *testing.T) {
	for _, query := range []string{"\ufe0f", "\u0301"} {
		if m := Search(query); m.Len() != 0 || m.Next() {
			t.Errorf("expected no matches for %+q, have %d", query, m.Len())
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	all := Collect(Iter())
	m := Search("")
	if m.Len() != len(all) {
		t.Fatalf("expected empty query to match all %d emojis, matches %d", len(all), m.Len())
	}
	for i := 0; m.Next(); i++ {
		if m.Emoji() != all[i] {
			t.Fatalf("expected empty query to yield catalog in recommended order, differs at %d", i)
		}
		if m.Score() != fuzzy.Lowest {
			t.Fatalf("expected empty query to match with lowest score, is %d", m.Score())
		}
	}
}

func TestSearchOrder(t *testing.T) {
	for _, query := range []string{"heart", "face", "rket", "flag", "cat", "e"} {
		m := Search(query)
		n := m.Len()
		var prev *Emoji
		var prevScore fuzzy.Score
		for m.Next() {
			if prev != nil {
				if m.Score() > prevScore {
					t.Fatalf("search %q: %q (%d) delivered after lower-scoring %q (%d)",
						query, m.Emoji().Name(), m.Score(), prev.Name(), prevScore)
				}
				if m.Score() == prevScore && m.Emoji().Order() < prev.Order() {
					t.Fatalf("search %q: ties not in recommended order: %q after %q",
						query, m.Emoji().Name(), prev.Name())
				}
			}
			prev, prevScore = m.Emoji(), m.Score()
			n--
		}
		if n != 0 {
			t.Errorf("search %q: Len() did not match the number of results", query)
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	for _, query := range []string{"heart", "smile", "hand", ""} {
		r1, r2 := Collect(Search(query)), Collect(Search(query))
		if len(r1) != len(r2) {
			t.Fatalf("expected repeated search for %q to yield %d results, yields %d", query, len(r1), len(r2))
		}
		for i := range r1 {
			if r1[i] != r2[i] {
				t.Fatalf("expected repeated search for %q to be identical, differs at %d", query, i)
			}
		}
	}
}

// Every name is a substring of itself, so searching for it has to find the
// emoji without gaps, and gap-free matches have positive scores.
func TestSearchSubstring(t *testing.T) {
	c := emojiCatalog()
	for i := 0; i < len(c.byOrder); i += 7 {
		e := c.byOrder[i]
		m := Search(e.Name())
		found := false
		for m.Next() && m.Score() > 0 {
			if m.Emoji() == e {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected search for %q to find it with a gap-free match", e.Name())
		}
	}
}

func TestSearchShortcodes(t *testing.T) {
	names := Searcher{}
	for _, e := range Collect(names.Search("tada")) {
		if e.Name() == "party popper" {
			t.Errorf("expected search without shortcodes not to find 'party popper' for 'tada'")
		}
	}
	if e := firstMatch(t, DefaultSearcher, "tada"); e.Shortcode() != "tada" {
		t.Errorf("expected search with shortcodes to find 'tada'")
	}
}

func TestSearchLimit(t *testing.T) {
	s := Searcher{Shortcodes: true, Limit: 3}
	m := s.Search("heart")
	if m.Len() != 3 {
		t.Errorf("expected Len() to respect the limit, is %d", m.Len())
	}
	results := Collect(m)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, have %d", len(results))
	}
	if results[0].Name() != "red heart" {
		t.Errorf("expected limited search to deliver the best match first, is %q", results[0].Name())
	}
	if m.Next() || m.Len() != 0 {
		t.Errorf("expected limited search to stay exhausted")
	}
}
