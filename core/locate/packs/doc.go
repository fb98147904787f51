/*
Package packs locates and loads the stored font corpus.

A corpus consists of an index document naming the stored fonts, plus one
pack document per font holding metadata and embedded-encoded reference
glyph images. Documents are retrieved through a Fetcher, with
implementations for local directories, remote HTTP locations and S3
buckets.

As fetching may be a time-consuming task, loading functions in this
package work in an async/await fashion by returning a promise. Functions
named

   Resolve…(…)

will return a resource-specific promise type, which the client will call
later to receive the loaded resource. The call to the promise-function
will then block until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package packs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'typefont.packs'.
func tracer() tracing.Trace {
	return tracing.Select("typefont.packs")
}
