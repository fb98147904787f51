package identify

import (
	"context"
	"sort"
	"sync"

	"github.com/npillmayer/typefont/core/glyph"
	"github.com/npillmayer/typefont/core/locate/packs"
	"github.com/npillmayer/typefont/engine/compare"
	"golang.org/x/sync/errgroup"
)

// Progress is called once per corpus font, after the font's comparison
// has finished. fraction is the completed share of the corpus in (0,1].
// Calls are serialized; fractions increase strictly and the final call
// reports 1.0.
type Progress func(font string, scores compare.ScoreSet, fraction float64)

// FontScore is the matching result for a single corpus font.
type FontScore struct {
	Name       string                 // display name of the font
	Similarity float64                // combined similarity in percent
	Symbols    compare.ScoreSet       // per-symbol scores behind the similarity
	Meta       map[string]interface{} // metadata of the font's pack
}

// Ranking lists the fonts of a corpus, most similar first.
type Ranking []FontScore

// Best returns the top-ranked font, nil for an empty ranking.
func (r Ranking) Best() *FontScore {
	if len(r) == 0 {
		return nil
	}
	return &r[0]
}

// Matcher ranks the fonts of a corpus by their similarity to a recognized
// glyph set.
type Matcher struct {
	Repo     *packs.Repository // corpus to match against
	Opts     compare.Options   // comparison parameters
	Progress Progress          // optional progress callback
}

// Run matches the recognized glyph set against every font the index
// lists and returns the fonts ranked by similarity. All fonts are matched
// concurrently, with their pack fetches started up front.
//
// Each font works on clones of the recognized set and of its reference
// alphabet, so the per-font domain reductions neither interfere with each
// other nor with the alphabets cached in the registry. A font's similarity
// is the mean of its per-symbol scores; a font sharing no symbols with
// the recognized set scores 0 and reports an empty score set. The first
// failing font cancels the remaining ones and aborts the whole run.
func (m *Matcher) Run(ctx context.Context, recognized *glyph.Set, index *packs.Index) (Ranking, error) {
	names := index.Names()
	if len(names) == 0 {
		tracer().Infof("corpus index is empty, nothing to match")
		return Ranking{}, nil
	}
	tracer().Infof("matching %d recognized glyphs against %d fonts", recognized.Len(), len(names))
	ranking := make(Ranking, len(names))
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	done := 0
	for i, name := range names {
		i, name := i, name
		promise := m.Repo.ResolvePack(name)
		g.Go(func() error {
			pack, err := promise.Pack(ctx)
			if err != nil {
				return err
			}
			alphabet, err := packs.GlobalRegistry().Alphabet(ctx, pack.Location)
			if err != nil {
				return err
			}
			mine, theirs := recognized.Clone(), alphabet.Clone()
			if n := glyph.Reduce(mine, theirs); n == 0 {
				tracer().Infof("font %q shares no symbols with the recognized text", name)
			}
			scores, err := compare.CompareAll(ctx, mine, theirs, m.Opts)
			if err != nil {
				return err
			}
			score := FontScore{
				Name:       pack.DisplayName(),
				Similarity: scores.Mean(),
				Symbols:    scores,
				Meta:       pack.Meta,
			}
			tracer().Debugf("font %q scores %.2f", score.Name, score.Similarity)
			mu.Lock()
			defer mu.Unlock()
			ranking[i] = score
			done++
			if m.Progress != nil {
				m.Progress(name, scores, float64(done)/float64(len(names)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Similarity > ranking[j].Similarity
	})
	return ranking, nil
}
