/*
Package recognize connects font identification to optical character
recognition.

The package defines the engine contract and the recognition result types,
reads hOCR documents as produced by Tesseract and friends, and extracts a
glyph set from a recognition result by cropping one glyph image per
recognized symbol. Concrete OCR backends live in sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package recognize

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'typefont.ocr'.
func tracer() tracing.Trace {
	return tracing.Select("typefont.ocr")
}
