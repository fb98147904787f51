package imaging

import (
	"math/bits"

	"github.com/npillmayer/typefont/core"
)

// Level is the value of a single pixel in a binarized image.
type Level uint8

// Binarization levels. Dark pixels (ink) map to Foreground, light pixels
// (paper) to Background.
const (
	Background Level = iota
	Foreground
)

// BinarizeThreshold is the luma cutoff separating ink from paper: a pixel
// with a luma below the threshold binarizes to Foreground, every other
// pixel to Background.
const BinarizeThreshold = 128

// luma returns the Rec. 601 luma of a pixel.
func luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// Binarize reduces the surface to pure black and white, with
// BinarizeThreshold as the cutoff. The result is a new surface, the
// receiver is left untouched.
func (s *Surface) Binarize() *Surface {
	out := s.Clone()
	pix := out.rgba.Pix
	for i := 0; i < len(pix); i += 4 {
		var v uint8 = 0xff
		if luma(pix[i], pix[i+1], pix[i+2]) < BinarizeThreshold {
			v = 0x00
		}
		pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xff
	}
	return out
}

// Bits binarizes the surface into a row-major bit matrix with one level
// per pixel.
func (s *Surface) Bits() *BitMatrix {
	w, h := s.Width(), s.Height()
	m := NewBitMatrix(w, h)
	pix := s.rgba.Pix
	for y := 0; y < h; y++ {
		row := s.rgba.PixOffset(0, y)
		for x := 0; x < w; x++ {
			i := row + x*4
			if luma(pix[i], pix[i+1], pix[i+2]) < BinarizeThreshold {
				m.Set(x, y, Foreground)
			}
		}
	}
	return m
}

// BitMatrix is a fixed-size, row-major matrix of binarization levels,
// packed into 64 bit words.
type BitMatrix struct {
	w, h  int
	words []uint64
}

// NewBitMatrix creates a w x h matrix with every position set to
// Background.
func NewBitMatrix(w, h int) *BitMatrix {
	return &BitMatrix{
		w:     w,
		h:     h,
		words: make([]uint64, (w*h+63)/64),
	}
}

// Width returns the number of columns of the matrix.
func (m *BitMatrix) Width() int {
	return m.w
}

// Height returns the number of rows of the matrix.
func (m *BitMatrix) Height() int {
	return m.h
}

// At returns the level at position (x,y), which must lie within the
// matrix dimensions.
func (m *BitMatrix) At(x, y int) Level {
	i := y*m.w + x
	if m.words[i/64]&(1<<uint(i%64)) != 0 {
		return Foreground
	}
	return Background
}

// Set sets the level at position (x,y), which must lie within the matrix
// dimensions.
func (m *BitMatrix) Set(x, y int, l Level) {
	i := y*m.w + x
	if l == Background {
		m.words[i/64] &^= 1 << uint(i%64)
	} else {
		m.words[i/64] |= 1 << uint(i%64)
	}
}

// Hamming counts the positions at which the levels of two matrices of
// equal dimensions differ.
func (m *BitMatrix) Hamming(other *BitMatrix) (int, error) {
	if m.w != other.w || m.h != other.h {
		return 0, core.Error(core.ECOMPARE, "bit matrices %dx%d and %dx%d do not match",
			m.w, m.h, other.w, other.h)
	}
	d := 0
	for i, w := range m.words {
		d += bits.OnesCount64(w ^ other.words[i])
	}
	return d, nil
}
