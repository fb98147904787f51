package typefont

import (
	"context"
	"errors"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/glyph"
	"github.com/npillmayer/typefont/core/imaging"
	"github.com/npillmayer/typefont/core/locate/packs"
	"github.com/npillmayer/typefont/engine/identify"
	"github.com/npillmayer/typefont/engine/recognize"
)

// Identify determines which of the corpus fonts the text in an image is
// most probably typeset in.
//
// source references the input image: a file path, an http(s) URL or a
// 'data:image/…;base64' URI. engine performs the character recognition,
// fetcher retrieves the corpus documents. The corpus index is fetched
// concurrently with the recognition.
//
// Identify returns the corpus fonts ranked by similarity, most similar
// first. Any failing font, a failing recognition, or an exceeded
// recognition time budget aborts the whole identification with a single
// error naming the failing resource.
func Identify(ctx context.Context, source string, engine recognize.Engine, fetcher packs.Fetcher, opts Options) (identify.Ranking, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("identifying the font of the text in %q", source)
	repo := packs.NewRepository(fetcher, opts.layout())
	indexPromise := repo.ResolveIndex()
	surface, err := imaging.ResolveSurface(imaging.SourceOf(source)).Surface(ctx)
	if err != nil {
		return nil, err
	}
	recognized, err := recognizeGlyphs(ctx, surface, engine, opts)
	if err != nil {
		return nil, err
	}
	index, err := indexPromise.Index(ctx)
	if err != nil {
		return nil, err
	}
	matcher := &identify.Matcher{
		Repo:     repo,
		Opts:     opts.compare(),
		Progress: opts.Progress,
	}
	return matcher.Run(ctx, recognized, index)
}

// recognizeGlyphs runs OCR on the input surface under the configured time
// budget and extracts the recognized glyph set. With binarization enabled
// the engine sees the binarized surface, and glyphs are cropped from it.
func recognizeGlyphs(ctx context.Context, surface *imaging.Surface, engine recognize.Engine, opts Options) (*glyph.Set, error) {
	pre := surface
	if opts.RecognitionBinarize {
		pre = surface.Binarize()
	}
	rctx, cancel := context.WithTimeout(ctx, opts.RecognitionTimeout)
	defer cancel()
	result, err := engine.Recognize(rctx, pre)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, core.TimeoutError(err, "text recognition")
		}
		return nil, err
	}
	return recognize.Glyphs(result, pre, opts.MinConfidence), nil
}
