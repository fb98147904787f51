//go:build !ocr

package tesseract

import (
	"context"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/imaging"
	"github.com/npillmayer/typefont/engine/recognize"
)

// Engine recognizes text with a local Tesseract installation. This build
// does not include Tesseract support.
type Engine struct {
	Languages []string // languages to recognize, e.g. "eng"
}

var _ recognize.Engine = &Engine{}

// Recognize always fails in builds without the 'ocr' build tag.
func (e *Engine) Recognize(ctx context.Context, img *imaging.Surface) (*recognize.Result, error) {
	return nil, core.Error(core.EINTERNAL, "tesseract support not compiled in, rebuild with -tags ocr")
}
