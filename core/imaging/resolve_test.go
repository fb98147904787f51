package imaging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typefont/core"
)

func TestSourceOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.images")
	defer teardown()
	if _, ok := SourceOf("data:image/png;base64,AAAA").(Encoded); !ok {
		t.Error("expected a data URI to yield an embedded source")
	}
	if _, ok := SourceOf("https://example.com/sample.png").(URL); !ok {
		t.Error("expected an https location to yield a remote source")
	}
	if _, ok := SourceOf("testdata/sample.png").(File); !ok {
		t.Error("expected a plain path to yield a file source")
	}
}

func TestFileSourceMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.images")
	defer teardown()
	_, err := File("no-such-image.png").Resolve(context.Background())
	if core.Code(err) != core.ELOAD {
		t.Errorf("expected an ELOAD error for a missing file, got %v", err)
	}
}

func TestEncodedSourceGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.images")
	defer teardown()
	_, err := Encoded("data:image/png;base64,!!!").Resolve(context.Background())
	if core.Code(err) != core.ELOAD {
		t.Errorf("expected an ELOAD error for garbage base64, got %v", err)
	}
}

func TestResolveSurface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.images")
	defer teardown()
	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := fill(New(6, 3), black).EncodePNG(f); err != nil {
		t.Fatal(err)
	}
	f.Close()
	promise := ResolveSurface(File(path))
	s, err := promise.Surface(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("expected to load a 6x3 surface, got %s", s)
	}
}
