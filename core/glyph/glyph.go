package glyph

import (
	"image"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/typefont/core/imaging"
)

// Image is a single glyph: the raster image of one symbol together with
// the symbol's textual label.
type Image struct {
	Label      string           // symbol text, normalized to NFC
	Surface    *imaging.Surface // raster image of the symbol
	Box        image.Rectangle  // bounding box within the source image
	Confidence float64          // recognition confidence in percent
}

// Set is a collection of glyphs, keyed by their labels. A label occurs at
// most once. Iteration order is the lexicographic order of labels.
//
// Sets are not safe for concurrent mutation; clients hand each worker its
// own clone instead.
type Set struct {
	m *treemap.Map
}

// NewSet creates an empty glyph set.
func NewSet() *Set {
	return &Set{m: treemap.NewWithStringComparator()}
}

// Put adds a glyph to the set. If a glyph with the same label is already
// present it is replaced, the last put wins.
func (s *Set) Put(g *Image) {
	if _, ok := s.m.Get(g.Label); ok {
		tracer().Debugf("glyph %q already present, replacing it", g.Label)
	}
	s.m.Put(g.Label, g)
}

// Get returns the glyph with the given label.
func (s *Set) Get(label string) (*Image, bool) {
	v, ok := s.m.Get(label)
	if !ok {
		return nil, false
	}
	return v.(*Image), true
}

// Remove drops the glyph with the given label, if present.
func (s *Set) Remove(label string) {
	s.m.Remove(label)
}

// Len returns the number of glyphs in the set.
func (s *Set) Len() int {
	return s.m.Size()
}

// Labels returns the labels of all glyphs in lexicographic order.
func (s *Set) Labels() []string {
	keys := s.m.Keys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.(string)
	}
	return labels
}

// Each calls f for every glyph in the set, in label order.
func (s *Set) Each(f func(label string, g *Image)) {
	s.m.Each(func(key, value interface{}) {
		f(key.(string), value.(*Image))
	})
}

// Clone returns an independent copy of the set. The glyph images are
// shared, the set structure is not: removing glyphs from the clone leaves
// the original untouched.
func (s *Set) Clone() *Set {
	clone := NewSet()
	s.m.Each(func(key, value interface{}) {
		clone.m.Put(key, value)
	})
	return clone
}
