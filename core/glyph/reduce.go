package glyph

// Reduce removes, from both sets, every glyph whose label does not occur in
// the other set. Afterwards the two sets hold exactly their shared labels.
//
// Reduce returns the size of the resulting domain. Callers must check for
// zero before comparing the sets pairwise: a zero domain means the sets
// have no symbol in common and there is nothing to compare.
func Reduce(a, b *Set) int {
	for _, label := range a.Labels() {
		if _, ok := b.Get(label); !ok {
			a.Remove(label)
		}
	}
	for _, label := range b.Labels() {
		if _, ok := a.Get(label); !ok {
			b.Remove(label)
		}
	}
	tracer().Debugf("glyph sets reduced to a domain of %d shared symbols", a.Len())
	return a.Len()
}
