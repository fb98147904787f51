package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding

	"github.com/npillmayer/typefont/core"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoding
)

// Surface is an in-memory raster image with a fixed RGBA pixel layout.
type Surface struct {
	rgba *image.RGBA
}

// New creates an all-white surface of the given dimensions.
func New(w, h int) *Surface {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.White, image.Point{}, draw.Src)
	return &Surface{rgba: rgba}
}

// FromImage copies the pixels of img into a fresh surface.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Surface{rgba: rgba}
}

// Decode decodes raw image bytes (PNG, JPEG, GIF, TIFF) into a surface.
func Decode(data []byte) (*Surface, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot decode image data")
	}
	tracer().Debugf("decoded a %s image of size %v", format, img.Bounds().Size())
	return FromImage(img), nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.rgba.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.rgba.Rect.Dy()
}

// Bounds returns the pixel bounds of the surface. Min is always (0,0).
func (s *Surface) Bounds() image.Rectangle {
	return s.rgba.Rect
}

// RGBA exposes the backing pixel buffer. Clients must not hold on to it
// across filter calls.
func (s *Surface) RGBA() *image.RGBA {
	return s.rgba
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	rgba := image.NewRGBA(s.rgba.Rect)
	copy(rgba.Pix, s.rgba.Pix)
	return &Surface{rgba: rgba}
}

// Crop copies the part of the surface covered by box into a new surface.
// The box is clamped to the surface bounds; a box entirely outside of them
// yields an empty surface.
func (s *Surface) Crop(box image.Rectangle) *Surface {
	clamped := box.Intersect(s.rgba.Rect)
	if clamped.Empty() {
		tracer().Debugf("crop box %v lies outside of %v", box, s.rgba.Rect)
		return &Surface{rgba: image.NewRGBA(image.Rectangle{})}
	}
	return FromImage(s.rgba.SubImage(clamped))
}

// Scaled resamples the surface to w x h pixels using Catmull-Rom
// interpolation. If the surface already has the requested dimensions, the
// receiver is returned unchanged.
func (s *Surface) Scaled(w, h int) *Surface {
	if s.Width() == w && s.Height() == h {
		return s
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), s.rgba, s.rgba.Bounds(), xdraw.Over, nil)
	return &Surface{rgba: dst}
}

// Grayscale returns a copy of the surface with every pixel replaced by its
// luma gray value.
func (s *Surface) Grayscale() *Surface {
	out := s.Clone()
	pix := out.rgba.Pix
	for i := 0; i < len(pix); i += 4 {
		y := luma(pix[i], pix[i+1], pix[i+2])
		pix[i], pix[i+1], pix[i+2] = y, y, y
	}
	return out
}

// Invert returns a copy of the surface with every color channel inverted.
// The alpha channel is preserved.
func (s *Surface) Invert() *Surface {
	out := s.Clone()
	pix := out.rgba.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = 0xff - pix[i]
		pix[i+1] = 0xff - pix[i+1]
		pix[i+2] = 0xff - pix[i+2]
	}
	return out
}

// EncodePNG writes the surface to w in PNG format.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.rgba); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode surface as PNG")
	}
	return nil
}

// EncodeString encodes the surface as a portable 'data:image/png;base64,…'
// URI, fit for embedding into font pack documents.
func (s *Surface) EncodeString() (string, error) {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Surface) String() string {
	return fmt.Sprintf("surface %dx%d", s.Width(), s.Height())
}
