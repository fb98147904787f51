/*
Package imaging provides the raster surface type which all font
identification steps operate on.

A surface wraps a fixed-layout RGBA pixel buffer and offers the handful of
primitives identification needs: decoding, cropping, scaling, grayscale and
inversion filters, binarization and a portable re-encoding. Surfaces are
created once from an image source and passed around by reference; filters
return new surfaces and leave the receiver untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package imaging

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'typefont.images'.
func tracer() tracing.Trace {
	return tracing.Select("typefont.images")
}
