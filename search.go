package emojis

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/npillmayer/emojis/fuzzy"
)

// Searcher holds the options for a fuzzy search over the catalog.
// The zero value searches emoji names only and does not limit the number of
// results.
type Searcher struct {
	Shortcodes bool // match shortcodes as well as names; the best score of an emoji counts
	Limit      int  // maximum number of results; 0 means unlimited
}

// DefaultSearcher is the Searcher used by Search.
var DefaultSearcher = Searcher{Shortcodes: true}

// Search performs a fuzzy search over the catalog with DefaultSearcher.
func Search(query string) *Matches {
	return DefaultSearcher.Search(query)
}

// Search matches query against every emoji of the catalog (excluding
// skin-tone variants) and returns the matching emojis, best match first.
// Emojis with equal scores are delivered in recommended order.
//
// An empty query matches every emoji with the lowest possible score, i.e.,
// the matches are the catalog in recommended order.
func (s Searcher) Search(query string) *Matches {
	c := emojiCatalog()
	p := fuzzy.NewPattern(query)
	heap := binaryheap.NewWith(byRank)
	for i, e := range c.byOrder {
		if score, ok := s.score(p, c.targets[i]); ok {
			heap.Push(match{emoji: e, score: score})
		}
	}
	tracer().Debugf("search %q: %d matches", p, heap.Size())
	return &Matches{heap: heap, limit: s.Limit}
}

// score returns the best score of a pattern against an emoji's targets.
func (s Searcher) score(p *fuzzy.Pattern, targets []fuzzy.Target) (best fuzzy.Score, found bool) {
	if !s.Shortcodes {
		targets = targets[:1]
	}
	for _, t := range targets {
		if score, ok := p.Score(t); ok && (!found || score > best) {
			best, found = score, true
		}
	}
	return best, found
}

type match struct {
	emoji *Emoji
	score fuzzy.Score
}

// byRank orders matches by descending score, then by ascending order.
func byRank(a, b interface{}) int {
	m1, m2 := a.(match), b.(match)
	switch {
	case m1.score > m2.score:
		return -1
	case m1.score < m2.score:
		return 1
	case m1.emoji.order < m2.emoji.order:
		return -1
	case m1.emoji.order > m2.emoji.order:
		return 1
	}
	return 0
}

// Matches is the result of a search. Matches are ranked lazily: each call
// to Next determines the next-best match.
type Matches struct {
	heap      *binaryheap.Heap
	limit     int
	delivered int
	current   match
}

// Next advances to the next-best match. It returns false if there are no
// more matches.
func (m *Matches) Next() bool {
	if m.limit > 0 && m.delivered >= m.limit {
		m.current = match{}
		return false
	}
	v, ok := m.heap.Pop()
	if !ok {
		m.current = match{}
		return false
	}
	m.current = v.(match)
	m.delivered++
	return true
}

// Emoji returns the current match, or nil if there is none.
func (m *Matches) Emoji() *Emoji {
	return m.current.emoji
}

// Score returns the score of the current match. Higher scores denote better
// matches.
func (m *Matches) Score() fuzzy.Score {
	return m.current.score
}

// Len returns the number of matches not yet delivered.
func (m *Matches) Len() int {
	n := m.heap.Size()
	if m.limit > 0 && m.limit-m.delivered < n {
		n = m.limit - m.delivered
	}
	return n
}
