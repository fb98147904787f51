//go:build ocr

package tesseract

import (
	"bytes"
	"context"
	"strings"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/imaging"
	"github.com/npillmayer/typefont/engine/recognize"
	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text with a local Tesseract installation. The zero
// value recognizes with Tesseract's default language.
type Engine struct {
	Languages []string // languages to recognize, e.g. "eng"
}

var _ recognize.Engine = &Engine{}

// Recognize encodes the surface as PNG, hands it to Tesseract and parses
// the resulting hOCR document, including per-character boxes.
func (e *Engine) Recognize(ctx context.Context, img *imaging.Surface) (*recognize.Result, error) {
	type hocrPlusErr struct {
		hocr string
		err  error
	}
	ch := make(chan hocrPlusErr, 1)
	go func() {
		result := hocrPlusErr{}
		result.hocr, result.err = e.hocr(img)
		ch <- result
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, core.WrapError(r.err, core.ELOAD, "text recognition failed")
		}
		return recognize.ParseHOCR(strings.NewReader(r.hocr))
	}
}

func (e *Engine) hocr(img *imaging.Surface) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if len(e.Languages) > 0 {
		if err := client.SetLanguage(e.Languages...); err != nil {
			return "", err
		}
	}
	if err := client.SetVariable("hocr_char_boxes", "true"); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", err
	}
	return client.HOCRText()
}
