package fuzzy

import (
	"math"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Score rates a match of a query against a candidate. Higher is better.
type Score int

// Lowest is the score of an empty query, which matches every candidate.
const Lowest Score = math.MinInt

// Scoring weights. The bonuses sum up to less than gapPenalty.
const (
	gapPenalty     Score = 1 << 20       // per unmatched rune between first and last match
	headBonus      Score = 1<<19 + 1<<16 // match starts at the very first rune
	wordStartBonus Score = 1 << 19       // match starts at the first rune of a word
	alignWeight    Score = 1 << 18       // scaled by fzf's rating of the alignment
	ratioWeight    Score = 1 << 17       // scaled by len(query)/len(candidate)
)

// alignCeiling bounds fzf's score per query rune. It is above fzf's maximum of
// scoreMatch plus a doubled boundary bonus.
const alignCeiling = 64

func init() {
	algo.Init("default")
}

// Pattern is a query prepared for matching.
type Pattern struct {
	text  string // folded query
	runes []rune
	empty bool // raw query was empty
}

// NewPattern prepares a query for matching against Targets.
func NewPattern(query string) *Pattern {
	folded := Fold(query)
	return &Pattern{text: folded, runes: []rune(folded), empty: query == ""}
}

// Len returns the number of runes of the folded query.
func (p *Pattern) Len() int {
	return len(p.runes)
}

func (p *Pattern) String() string {
	return p.text
}

// Target is a candidate string prepared for matching. The zero value is an
// empty candidate.
type Target struct {
	text      string // folded candidate
	runes     []rune
	chars     util.Chars
	wordStart []bool // wordStart[i]: rune i starts a word
}

// NewTarget prepares a candidate for matching. It is intended to be called once
// per candidate; the result may be re-used for any number of patterns.
func NewTarget(candidate string) Target {
	folded := Fold(candidate)
	t := Target{text: folded, runes: []rune(folded)}
	t.chars = util.ToChars([]byte(folded))
	t.wordStart = make([]bool, len(t.runes))
	for i, r := range t.runes {
		if isWordRune(r) && (i == 0 || !isWordRune(t.runes[i-1])) {
			t.wordStart[i] = true
		}
	}
	return t
}

func (t Target) String() string {
	return t.text
}

// Match folds query and candidate and scores them. ok is false if query is
// not a subsequence of candidate.
func Match(query, candidate string) (score Score, ok bool) {
	return NewPattern(query).Score(NewTarget(candidate))
}

// Score rates how well the pattern matches a target. ok is false if the pattern
// is not a subsequence of the target. An empty pattern matches every target with
// score Lowest. A pattern consisting of marks only, which folds to nothing,
// matches no target.
func (p *Pattern) Score(t Target) (score Score, ok bool) {
	if len(p.runes) == 0 {
		if p.empty {
			return Lowest, true
		}
		return 0, false
	}
	if len(p.runes) > len(t.runes) {
		return 0, false
	}
	chars := t.chars // fzf takes a pointer, t may be shared
	res, _ := algo.ExactMatchNaive(true, false, true, &chars, p.runes, false, nil)
	if res.Start >= 0 {
		return p.rate(t, res.Start, 0, res.Score), true
	}
	res, pos := algo.FuzzyMatchV2(true, false, true, &chars, p.runes, true, nil)
	if res.Start < 0 || pos == nil || len(*pos) != len(p.runes) {
		return 0, false
	}
	first, last := (*pos)[0], (*pos)[0]
	for _, i := range *pos { // fzf reports positions back to front
		if i < first {
			first = i
		}
		if i > last {
			last = i
		}
	}
	return p.rate(t, first, last-first+1-len(p.runes), res.Score), true
}

// rate combines the gaps of an alignment starting at t.runes[start] with
// fzf's own score of it.
func (p *Pattern) rate(t Target, start, gaps, aligned int) Score {
	n := Score(len(p.runes))
	score := -Score(gaps) * gapPenalty
	if start == 0 {
		score += headBonus
	} else if t.wordStart[start] {
		score += wordStartBonus
	}
	ceiling := alignCeiling * n
	if a := Score(aligned); a > 0 {
		if a > ceiling {
			a = ceiling
		}
		score += alignWeight * a / ceiling
	}
	score += ratioWeight * n / Score(len(t.runes))
	return score
}
