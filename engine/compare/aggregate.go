package compare

import (
	"context"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/glyph"
	"golang.org/x/sync/errgroup"
)

// CompareAll evaluates both metrics for every symbol the two glyph sets
// share. The sets must have been reduced to a common domain beforehand;
// an empty domain yields an empty score set right away.
//
// Symbols are compared concurrently, and the two metrics of a symbol are
// evaluated concurrently as well. The first failing comparison cancels
// the remaining ones; its error is returned annotated with the failing
// symbol.
func CompareAll(ctx context.Context, a, b *glyph.Set, opts Options) (ScoreSet, error) {
	if a.Len() == 0 {
		tracer().Debugf("empty comparison domain, nothing to compare")
		return ScoreSet{}, nil
	}
	type labeledScore struct {
		label string
		score SymbolScore
	}
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan labeledScore, a.Len())
	a.Each(func(label string, ga *glyph.Image) {
		gb, ok := b.Get(label)
		if !ok {
			g.Go(func() error {
				return core.Error(core.EINTERNAL,
					"glyph sets not reduced, symbol %q missing from one side", label)
			})
			return
		}
		g.Go(func() error {
			score, err := compareSymbol(ctx, ga, gb, opts)
			if err != nil {
				return core.ComparisonError(err, label)
			}
			results <- labeledScore{label: label, score: score}
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)
	scores := make(ScoreSet, a.Len())
	for r := range results {
		scores[r.label] = r.score
	}
	return scores, nil
}

// compareSymbol runs the two metrics for one glyph pairing.
func compareSymbol(ctx context.Context, a, b *glyph.Image, opts Options) (SymbolScore, error) {
	var score SymbolScore
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		score.Analytic, err = Analytic(ctx, a.Surface, b.Surface, opts)
		return err
	})
	g.Go(func() error {
		var err error
		score.Shape, err = Shape(ctx, a.Surface, b.Surface, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return SymbolScore{}, err
	}
	return score, nil
}
