package fuzzy

import (
	"testing"
)

func TestFold(t *testing.T) {
	for _, c := range [][2]string{
		{"rocket", "rocket"},
		{"Rocket", "rocket"},
		{"piñata", "pinata"},
		{"Côte d’Ivoire", "cote d’ivoire"},
		{"flag: São Tomé", "flag: sao tome"},
		{"OK hand", "ok hand"},
		{"", ""},
	} {
		if f := Fold(c[0]); f != c[1] {
			t.Errorf("expected Fold(%q) to be %q, is %q", c[0], c[1], f)
		}
	}
}

func TestNoMatch(t *testing.T) {
	for _, c := range [][2]string{
		{"xyz", "rocket"},
		{"tekcor", "rocket"},
		{"rockets", "rocket"},
		{"a", ""},
	} {
		if s, ok := Match(c[0], c[1]); ok {
			t.Errorf("expected %q not to match %q, has score %d", c[0], c[1], s)
		}
	}
}

func TestEmptyQuery(t *testing.T) {
	for _, c := range []string{"rocket", "", "face with raised eyebrow"} {
		s, ok := Match("", c)
		if !ok || s != Lowest {
			t.Errorf("expected empty query to match %q with lowest score, has %d/%v", c, s, ok)
		}
	}
}

func TestExactMatch(t *testing.T) {
	s, ok := Match("rocket", "rocket")
	if !ok {
		t.Fatalf("expected 'rocket' to match itself")
	}
	if s <= headBonus+ratioWeight || s >= gapPenalty {
		t.Errorf("expected exact match to score in (%d, %d), is %d", headBonus+ratioWeight, gapPenalty, s)
	}
	if s2, _ := Match("ROCKET", "Rocket"); s2 != s {
		t.Errorf("expected matching to ignore case, scores differ: %d != %d", s2, s)
	}
}

func TestSubsequence(t *testing.T) {
	s, ok := Match("rket", "rocket")
	if !ok {
		t.Fatalf("expected 'rket' to match 'rocket'")
	}
	if s >= 0 {
		t.Errorf("expected gapped match to have negative score, is %d", s)
	}
	if s2, _ := Match("pinata", "piñata"); s2 <= 0 {
		t.Errorf("expected 'pinata' to match 'piñata' without gaps, score is %d", s2)
	}
}

func TestGapCount(t *testing.T) {
	for _, c := range []struct {
		query, candidate string
		gaps             Score
	}{
		{"rket", "rocket", 2},
		{"hd", "hot dog", 3},
		{"rock", "rosy creek", 6},
		{"ab", "a b", 1},
	} {
		s, ok := Match(c.query, c.candidate)
		if !ok {
			t.Errorf("expected %q to match %q", c.query, c.candidate)
			continue
		}
		if s >= -(c.gaps-1)*gapPenalty || s < -c.gaps*gapPenalty {
			t.Errorf("expected %q in %q to have %d gaps, score is %d", c.query, c.candidate, c.gaps, s)
		}
	}
}

func TestGapsDominate(t *testing.T) {
	// query is a substring of the first candidate, but needs gaps in the second
	cases := []struct {
		query, contiguous, gapped string
	}{
		{"cket", "a very long name with a racket in it", "cookie kettle"},
		{"rock", "flag: Rock Island", "rosy creek"},
		{"ab", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxab", "a b"},
		{"hd", "xxxxxxxxxxxxxxxxhdxxxxxxxxxxxxxx", "hot dog"},
	}
	for _, c := range cases {
		s1, ok1 := Match(c.query, c.contiguous)
		s2, ok2 := Match(c.query, c.gapped)
		if !ok1 || !ok2 {
			t.Errorf("expected %q to match both %q and %q", c.query, c.contiguous, c.gapped)
			continue
		}
		if s1 <= s2 {
			t.Errorf("expected substring match in %q (%d) to outrank gapped match in %q (%d)",
				c.contiguous, s1, c.gapped, s2)
		}
	}
}

func TestBestAlignment(t *testing.T) {
	// greedy matching from the first 'o' would need gaps
	s, ok := Match("ock", "o rock")
	if !ok {
		t.Fatalf("expected 'ock' to match 'o rock'")
	}
	if s < 0 {
		t.Errorf("expected alignment without gaps to be found, score is %d", s)
	}
}

func TestStartBonus(t *testing.T) {
	head, _ := Match("car", "carousel horse")
	word, _ := Match("car", "race car")
	mid, _ := Match("car", "scarf")
	t.Logf("head=%d, word=%d, mid=%d", head, word, mid)
	if head <= word {
		t.Errorf("expected match at start of candidate to outrank match at start of word")
	}
	if word <= mid {
		t.Errorf("expected match at start of word to outrank match in the middle of a word")
	}
}

func TestWordBoundaryBonus(t *testing.T) {
	multi, _ := Match("hd", "hot dog")
	single, _ := Match("hd", "hotxdog")
	if multi <= single {
		t.Errorf("expected 'hd' to score higher on word starts of 'hot dog' (%d) than on 'hotxdog' (%d)",
			multi, single)
	}
}

func TestLengthRatio(t *testing.T) {
	short, _ := Match("grape", "grapes")
	long, _ := Match("grape", "grapefruit")
	if short <= long {
		t.Errorf("expected shorter candidate to score higher: %d <= %d", short, long)
	}
}

func TestPatternReuse(t *testing.T) {
	p := NewPattern("Rckt")
	if p.Len() != 4 || p.String() != "rckt" {
		t.Errorf("expected folded pattern 'rckt', have %q", p)
	}
	targets := []Target{NewTarget("rocket"), NewTarget("cricket"), NewTarget("the rocky kettle")}
	var prev Score
	for i, target := range targets {
		s, ok := p.Score(target)
		if !ok {
			t.Fatalf("expected %q to match %q", p, target)
		}
		if s2, _ := p.Score(target); s2 != s {
			t.Errorf("expected scoring to be deterministic, have %d and %d", s, s2)
		}
		if i > 0 && s >= prev {
			t.Errorf("expected %q to score lower than its predecessor", target)
		}
		prev = s
	}
}

func TestMarksOnlyQuery(t *testing.T) {
	for _, q := range []string{"\ufe0f", "\u0301", "\u0301\ufe0f"} {
		p := NewPattern(q)
		if p.Len() != 0 {
			t.Errorf("expected %+q to fold to nothing, is %q", q, p)
		}
		if s, ok := p.Score(NewTarget("rocket")); ok {
			t.Errorf("expected %+q not to match 'rocket', has score %d", q, s)
		}
		if _, ok := p.Score(Target{}); ok {
			t.Errorf("expected %+q not to match an empty candidate", q)
		}
	}
}

func TestBonusesBelowGap(t *testing.T) {
	// best possible gap-free match against the worst gap-free one
	best, _ := Match("a", "a")
	worst, _ := Match("b", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab")
	if best >= gapPenalty {
		t.Errorf("expected bonuses to stay below a gap, have %d", best)
	}
	if worst <= 0 {
		t.Errorf("expected gap-free match to have positive score, is %d", worst)
	}
}

func TestZeroTarget(t *testing.T) {
	var target Target
	if _, ok := NewPattern("a").Score(target); ok {
		t.Errorf("expected zero target not to match non-empty pattern")
	}
	if s, ok := NewPattern("").Score(target); !ok || s != Lowest {
		t.Errorf("expected zero target to match empty pattern")
	}
}
