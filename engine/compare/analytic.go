package compare

import (
	"context"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/imaging"
)

// Analytic compares two glyph images pixel by pixel. A pixel pair counts
// as different when its normalized color delta
//
//    (|Δr| + |Δg| + |Δb|) / (3 · 255)
//
// exceeds the configured threshold; the similarity is the percentage of
// matching pixels.
//
// The images must have identical dimensions, unless scaling to a common
// size is switched on in the options.
func Analytic(ctx context.Context, a, b imaging.Source, opts Options) (float64, error) {
	sa, err := a.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	sb, err := b.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	if opts.AnalyticScaleToSameSize {
		sa = sa.Scaled(opts.AnalyticSize, opts.AnalyticSize)
		sb = sb.Scaled(opts.AnalyticSize, opts.AnalyticSize)
	} else if sa.Width() != sb.Width() || sa.Height() != sb.Height() {
		return 0, core.Error(core.ECOMPARE,
			"image sizes do not match (%s vs %s); enable scaling to compare them", sa, sb)
	}
	total := sa.Width() * sa.Height()
	if total == 0 {
		return 0, core.Error(core.ECOMPARE, "cannot compare empty images")
	}
	pa, pb := sa.RGBA().Pix, sb.RGBA().Pix
	diff := 0
	for i := 0; i < len(pa); i += 4 {
		delta := abs(int(pa[i])-int(pb[i])) +
			abs(int(pa[i+1])-int(pb[i+1])) +
			abs(int(pa[i+2])-int(pb[i+2]))
		if float64(delta)/(3*255) > opts.AnalyticThreshold {
			diff++
		}
	}
	return 100 - float64(diff)/float64(total)*100, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
