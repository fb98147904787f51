package recognize

import (
	"image"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typefont/core/imaging"
)

func TestGlyphsConfidenceThreshold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	img := imaging.New(40, 20)
	result := &Result{Symbols: []Symbol{
		{Text: "a", Confidence: 80, Box: image.Rect(0, 0, 10, 20)},
		{Text: "b", Confidence: 10, Box: image.Rect(10, 0, 20, 20)},
	}}
	set := Glyphs(result, img, 15)
	if set.Len() != 1 {
		t.Fatalf("expected 1 glyph, got %d", set.Len())
	}
	if _, ok := set.Get("b"); ok {
		t.Error("did not expect the low-confidence symbol to survive")
	}
}

func TestGlyphsDuplicateLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	img := imaging.New(40, 20)
	result := &Result{Symbols: []Symbol{
		{Text: "a", Confidence: 70, Box: image.Rect(0, 0, 10, 20)},
		{Text: "a", Confidence: 90, Box: image.Rect(20, 0, 30, 20)},
	}}
	set := Glyphs(result, img, 15)
	if set.Len() != 1 {
		t.Fatalf("expected 1 glyph, got %d", set.Len())
	}
	g, _ := set.Get("a")
	if g.Box != image.Rect(20, 0, 30, 20) {
		t.Errorf("expected the last recognized glyph to win, got box %v", g.Box)
	}
}

func TestGlyphsClampsBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	img := imaging.New(40, 20)
	result := &Result{Symbols: []Symbol{
		{Text: "a", Confidence: 70, Box: image.Rect(30, 10, 60, 40)},
		{Text: "b", Confidence: 70, Box: image.Rect(100, 100, 120, 120)},
	}}
	set := Glyphs(result, img, 15)
	if set.Len() != 1 {
		t.Fatalf("expected 1 glyph, got %d", set.Len())
	}
	g, _ := set.Get("a")
	if g.Surface.Width() != 10 || g.Surface.Height() != 10 {
		t.Errorf("expected the crop to be clamped to 10x10, got %s", g.Surface)
	}
}

func TestGlyphsEmptyResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.ocr")
	defer teardown()
	set := Glyphs(&Result{}, imaging.New(10, 10), 15)
	if set.Len() != 0 {
		t.Errorf("expected an empty set, got %d glyphs", set.Len())
	}
}
