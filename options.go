package typefont

import (
	"time"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/locate/packs"
	"github.com/npillmayer/typefont/engine/compare"
	"github.com/npillmayer/typefont/engine/identify"
)

// Options parametrize a font identification. Clients start from
// DefaultOptions and change what needs changing; Identify validates the
// options it is handed and rejects out-of-range values.
type Options struct {
	// Comparison
	PerceptualSize          int     // edge length for the shape metric
	AnalyticThreshold       float64 // per-pixel difference threshold in [0,1]
	AnalyticScaleToSameSize bool    // scale both images before the analytic metric
	AnalyticSize            int     // edge length for scaled analytic comparison

	// Recognition
	MinConfidence       float64       // drop symbols below this confidence, in percent
	RecognitionTimeout  time.Duration // time budget for the OCR engine
	RecognitionBinarize bool          // binarize the input image before recognition

	// Corpus layout
	FontsDirectory string // sub-directory holding the fonts
	FontsIndex     string // name of the corpus index document
	FontsData      string // name of a font's pack document

	// Progress is called once per corpus font. Optional.
	Progress identify.Progress
}

// DefaultOptions returns the standard identification parameters.
func DefaultOptions() Options {
	return Options{
		PerceptualSize:      64,
		AnalyticThreshold:   0.5,
		AnalyticSize:        128,
		MinConfidence:       15,
		RecognitionTimeout:  60 * time.Second,
		RecognitionBinarize: true,
		FontsDirectory:      "fonts",
		FontsIndex:          "index.json",
		FontsData:           "data.json",
	}
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	switch {
	case o.PerceptualSize <= 0:
		return core.Error(core.EINVALID, "perceptual size must be positive, is %d", o.PerceptualSize)
	case o.AnalyticThreshold < 0 || o.AnalyticThreshold > 1:
		return core.Error(core.EINVALID, "analytic threshold must lie in [0,1], is %g", o.AnalyticThreshold)
	case o.AnalyticSize <= 0:
		return core.Error(core.EINVALID, "analytic size must be positive, is %d", o.AnalyticSize)
	case o.MinConfidence < 0 || o.MinConfidence > 100:
		return core.Error(core.EINVALID, "confidence threshold must lie in [0,100], is %g", o.MinConfidence)
	case o.RecognitionTimeout <= 0:
		return core.Error(core.EINVALID, "recognition timeout must be positive, is %v", o.RecognitionTimeout)
	case o.FontsIndex == "":
		return core.Error(core.EINVALID, "name of the corpus index document must not be empty")
	case o.FontsData == "":
		return core.Error(core.EINVALID, "name of the pack documents must not be empty")
	}
	return nil
}

func (o Options) compare() compare.Options {
	return compare.Options{
		PerceptualSize:          o.PerceptualSize,
		AnalyticThreshold:       o.AnalyticThreshold,
		AnalyticScaleToSameSize: o.AnalyticScaleToSameSize,
		AnalyticSize:            o.AnalyticSize,
	}
}

func (o Options) layout() packs.Layout {
	return packs.Layout{
		Dir:   o.FontsDirectory,
		Index: o.FontsIndex,
		Data:  o.FontsData,
	}
}
