/*
Package tesseract adapts the Tesseract OCR engine for font identification.

The adapter shells into a local Tesseract installation through gosseract,
which requires cgo and the Tesseract C libraries. It is therefore guarded
by the build tag 'ocr'; builds without the tag get a stub which fails with
an explanatory error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tesseract
