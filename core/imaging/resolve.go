package imaging

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/npillmayer/typefont/core"
)

// Source is a single image source: either an already-decoded surface or a
// reference which still has to be loaded and decoded.
type Source interface {
	// Resolve produces the decoded surface for this source.
	Resolve(ctx context.Context) (*Surface, error)
	// Ref names the source in a form suitable for error messages.
	Ref() string
}

// Resolve makes a surface its own source.
func (s *Surface) Resolve(ctx context.Context) (*Surface, error) {
	return s, nil
}

// Ref names the surface in error messages.
func (s *Surface) Ref() string {
	return s.String()
}

// Encoded is a base64-encoded image, optionally prefixed with a
// 'data:image/…;base64,' header. Font pack documents embed their reference
// glyphs in this format.
type Encoded string

// Resolve decodes the embedded image into a surface.
func (e Encoded) Resolve(ctx context.Context) (*Surface, error) {
	data := string(e)
	if strings.HasPrefix(data, "data:") {
		i := strings.Index(data, ",")
		if i < 0 {
			return nil, core.Error(core.ELOAD, "cannot load %s: malformed data URI", e.Ref())
		}
		data = data[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, core.LoadError(err, e.Ref())
	}
	s, err := Decode(raw)
	if err != nil {
		return nil, core.LoadError(err, e.Ref())
	}
	return s, nil
}

// Ref names the embedded image in error messages.
func (e Encoded) Ref() string {
	return fmt.Sprintf("embedded image (%d bytes)", len(e))
}

// File is the path of an image file on the local file system.
type File string

// Resolve reads and decodes the image file.
func (f File) Resolve(ctx context.Context) (*Surface, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, core.LoadError(err, string(f))
	}
	s, err := Decode(data)
	if err != nil {
		return nil, core.LoadError(err, string(f))
	}
	return s, nil
}

// Ref names the image file in error messages.
func (f File) Ref() string {
	return string(f)
}

// URL is the HTTP(S) location of a remote image.
type URL string

// Resolve fetches and decodes the remote image.
func (u URL) Resolve(ctx context.Context) (*Surface, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, string(u), nil)
	if err != nil {
		return nil, core.LoadError(err, string(u))
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, core.LoadError(err, string(u))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, core.Error(core.ELOAD, "cannot load %q: %s", string(u), resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.LoadError(err, string(u))
	}
	s, err := Decode(data)
	if err != nil {
		return nil, core.LoadError(err, string(u))
	}
	return s, nil
}

// Ref names the remote image in error messages.
func (u URL) Ref() string {
	return string(u)
}

// SourceOf interprets a source string: a data URI yields an embedded image,
// an http(s) location a remote one, anything else is taken to be a file
// path.
func SourceOf(source string) Source {
	switch {
	case strings.HasPrefix(source, "data:"):
		return Encoded(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return URL(source)
	}
	return File(source)
}

// --- Surface promise --------------------------------------------------

// SurfacePromise is the result of resolving an image source in the
// background.
type SurfacePromise interface {
	// Surface blocks until loading has completed and returns the decoded
	// surface.
	Surface(ctx context.Context) (*Surface, error)
}

type surfacePlusErr struct {
	s   *Surface
	err error
}

type surfaceLoader struct {
	await func(ctx context.Context) (*Surface, error)
}

func (loader surfaceLoader) Surface(ctx context.Context) (*Surface, error) {
	return loader.await(ctx)
}

// ResolveSurface starts loading and decoding an image source in the
// background and returns a promise for the resulting surface.
func ResolveSurface(src Source) SurfacePromise {
	ch := make(chan surfacePlusErr, 1) // buffered, the promise may go unawaited
	go func(ch chan<- surfacePlusErr) {
		result := surfacePlusErr{}
		tracer().Debugf("resolving image source %s", src.Ref())
		result.s, result.err = src.Resolve(context.Background())
		ch <- result
		close(ch)
	}(ch)
	return surfaceLoader{
		await: func(ctx context.Context) (*Surface, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.s, r.err
			}
		},
	}
}
