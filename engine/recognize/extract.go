package recognize

import (
	"github.com/npillmayer/typefont/core/glyph"
	"github.com/npillmayer/typefont/core/imaging"
	"golang.org/x/text/unicode/norm"
)

// Glyphs crops one glyph per recognized symbol from the recognized image
// surface and collects the crops into a glyph set.
//
// Symbols below the confidence threshold (in percent) are dropped, as are
// symbols with an empty text or an empty clamped bounding box. Labels are
// normalized to NFC. When a label occurs more than once, the glyph
// recognized last wins.
func Glyphs(result *Result, img *imaging.Surface, minConfidence float64) *glyph.Set {
	set := glyph.NewSet()
	for _, sym := range result.Symbols {
		if sym.Confidence < minConfidence {
			tracer().Debugf("dropping symbol %q, confidence %.1f below %.1f",
				sym.Text, sym.Confidence, minConfidence)
			continue
		}
		label := norm.NFC.String(sym.Text)
		if label == "" {
			continue
		}
		crop := img.Crop(sym.Box)
		if crop.Width() == 0 || crop.Height() == 0 {
			tracer().Infof("dropping symbol %q, box %v lies outside the image", label, sym.Box)
			continue
		}
		set.Put(&glyph.Image{
			Label:      label,
			Surface:    crop,
			Box:        sym.Box,
			Confidence: sym.Confidence,
		})
	}
	tracer().Infof("extracted %d glyphs from %d recognized symbols", set.Len(), len(result.Symbols))
	return set
}
