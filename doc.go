/*
Package typefont identifies the font a piece of rendered text is typeset
in.

Identification recognizes the characters in an input image, crops one
glyph image per recognized symbol, and compares the glyphs to reference
alphabets stored in a font corpus. Every corpus font is scored by two
similarity metrics over the symbols it shares with the recognized text;
the result is a ranking of the corpus, most similar font first.

The heavy lifting is done by the sub-packages: core/imaging provides the
raster surface, core/glyph the glyph sets, core/locate/packs the corpus
repository, engine/recognize the OCR binding and engine/compare and
engine/identify the comparison pipeline. This package ties them together
behind a single entry point, Identify.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package typefont

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'typefont'.
func tracer() tracing.Trace {
	return tracing.Select("typefont")
}
