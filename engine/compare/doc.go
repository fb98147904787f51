/*
Package compare measures the visual similarity of glyph images.

Two metrics are implemented: a perceptual-hash comparison of binarized
shapes and an analytic pixel-by-pixel comparison. Identification runs both
for every symbol two glyph sets share and combines them into per-symbol
scores; all similarities are percentages, 100 meaning a perfect match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compare

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'typefont.match'.
func tracer() tracing.Trace {
	return tracing.Select("typefont.match")
}
