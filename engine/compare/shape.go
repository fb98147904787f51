package compare

import (
	"context"

	"github.com/npillmayer/typefont/core/imaging"
)

// Shape compares the shapes of two glyph images. Both are scaled to a
// square of the configured perceptual size and binarized; the similarity
// is derived from the Hamming distance of the two bit matrices:
//
//    similarity = 100 - distance/size² · 100
//
// Identical shapes score 100, fully inverted ones 0.
func Shape(ctx context.Context, a, b imaging.Source, opts Options) (float64, error) {
	sa, err := a.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	sb, err := b.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	n := opts.PerceptualSize
	ma := sa.Scaled(n, n).Bits()
	mb := sb.Scaled(n, n).Bits()
	dist, err := ma.Hamming(mb)
	if err != nil {
		return 0, err
	}
	return 100 - float64(dist)/float64(n*n)*100, nil
}
