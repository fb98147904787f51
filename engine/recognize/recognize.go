package recognize

import (
	"context"
	"image"

	"github.com/npillmayer/typefont/core/imaging"
)

// Symbol is a single recognized character.
type Symbol struct {
	Text       string          // recognized text, usually a single grapheme
	Confidence float64         // recognition confidence in percent
	Box        image.Rectangle // bounding box within the recognized image
}

// Result is the outcome of recognizing the text in an image.
type Result struct {
	Symbols []Symbol
}

// Engine performs optical character recognition on an image surface.
// Implementations must honor cancellation of ctx; recognition runs under a
// deadline.
type Engine interface {
	Recognize(ctx context.Context, img *imaging.Surface) (*Result, error)
}
