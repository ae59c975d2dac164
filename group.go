package emojis

// Groups returns all emoji groups, in recommended order.
func Groups() []Group {
	groups := make([]Group, len(_Group_index)-1)
	for i := range groups {
		groups[i] = Group(i)
	}
	return groups
}

// Emojis returns an iterator over the emojis of group g, in recommended order.
// For an unknown group the iterator is empty.
func (g Group) Emojis() *Iterator {
	c := emojiCatalog()
	if g < 0 || int(g) >= len(c.byGroup) {
		return &Iterator{}
	}
	return &Iterator{emojis: c.byGroup[g]}
}
