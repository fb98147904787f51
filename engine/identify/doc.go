/*
Package identify ranks the fonts of a corpus by their visual similarity to
a recognized glyph set.

Each font of the corpus is matched concurrently: its pack is fetched, its
reference alphabet and a clone of the recognized set are reduced to their
shared symbols, and the remaining glyph pairings are scored by the
comparison metrics. The per-font similarities are combined into a ranking,
most similar font first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package identify

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'typefont.match'.
func tracer() tracing.Trace {
	return tracing.Select("typefont.match")
}
