/*
Package glyph holds the glyph sets which font identification revolves
around.

A glyph is the raster image of a single recognized or reference symbol,
keyed by its textual label. Identification extracts a glyph set from the
input image, loads one reference set per corpus font, reduces both sets of
a pairing to their shared labels and compares the remaining glyph images
pairwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'typefont.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("typefont.glyphs")
}
