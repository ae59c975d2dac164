package emojis

// Sequence is a pull-style sequence of emojis. It is implemented by
// *Iterator and *Matches.
type Sequence interface {
	Next() bool
	Emoji() *Emoji
}

// Iterator iterates over a fixed list of emojis in recommended order.
//
//   it := emojis.Iter()
//   for it.Next() {
//       e := it.Emoji()
//       …
//   }
type Iterator struct {
	emojis []*Emoji
	pos    int // position of the current emoji + 1
}

// Iter returns an iterator over all emojis in recommended order. Skin-tone
// variants other than the default one are not included.
func Iter() *Iterator {
	return &Iterator{emojis: emojiCatalog().byOrder}
}

// Next advances to the next emoji. It returns false if the iterator is
// exhausted.
func (it *Iterator) Next() bool {
	if it.pos >= len(it.emojis) {
		it.pos = len(it.emojis) + 1
		return false
	}
	it.pos++
	return true
}

// Emoji returns the current emoji, or nil before the first call to Next or
// after the iterator has been exhausted.
func (it *Iterator) Emoji() *Emoji {
	if it.pos < 1 || it.pos > len(it.emojis) {
		return nil
	}
	return it.emojis[it.pos-1]
}

// Len returns the total number of emojis of the iteration.
func (it *Iterator) Len() int {
	return len(it.emojis)
}

// Reset restarts the iteration.
func (it *Iterator) Reset() {
	it.pos = 0
}

// Collect drains a sequence into a slice.
func Collect(seq Sequence) []*Emoji {
	var emojis []*Emoji
	if it, ok := seq.(*Iterator); ok {
		emojis = make([]*Emoji, 0, it.Len())
	}
	for seq.Next() {
		emojis = append(emojis, seq.Emoji())
	}
	return emojis
}
