package compare

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/glyph"
	"github.com/npillmayer/typefont/core/imaging"
)

func setOf(glyphs map[string]*imaging.Surface) *glyph.Set {
	set := glyph.NewSet()
	for label, s := range glyphs {
		set.Put(&glyph.Image{Label: label, Surface: s, Confidence: 100})
	}
	return set
}

func TestCompareAllIdenticalSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.match")
	defer teardown()
	a := setOf(map[string]*imaging.Surface{"a": square(4, ink), "b": square(4, paper)})
	b := setOf(map[string]*imaging.Surface{"a": square(4, ink), "b": square(4, paper)})
	scores, err := CompareAll(context.Background(), a, b, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected scores for 2 symbols, got %d", len(scores))
	}
	for label, score := range scores {
		if score.Analytic != 100 || score.Shape != 100 {
			t.Errorf("expected symbol %q to score 100/100, got %+v", label, score)
		}
	}
	if scores.Mean() != 100 {
		t.Errorf("expected a combined score of 100, got %f", scores.Mean())
	}
}

func TestCompareAllEmptyDomain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.match")
	defer teardown()
	done := make(chan struct{})
	var scores ScoreSet
	var err error
	go func() {
		scores, err = CompareAll(context.Background(), glyph.NewSet(), glyph.NewSet(), DefaultOptions())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected an empty domain to resolve immediately")
	}
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("expected an empty score set, got %d entries", len(scores))
	}
}

func TestCompareAllFailsFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.match")
	defer teardown()
	a := setOf(map[string]*imaging.Surface{"a": square(4, ink), "b": square(4, ink)})
	b := setOf(map[string]*imaging.Surface{"a": square(4, ink), "b": square(8, ink)})
	_, err := CompareAll(context.Background(), a, b, DefaultOptions())
	if core.Code(err) != core.ECOMPARE {
		t.Fatalf("expected an ECOMPARE error, got %v", err)
	}
	if core.UserMessage(err) != `cannot compare images for symbol "b"` {
		t.Errorf("expected the error to name the failing symbol, got %q", core.UserMessage(err))
	}
}

func TestScoreSetMean(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.match")
	defer teardown()
	scores := ScoreSet{
		"a": {Analytic: 100, Shape: 50},
		"b": {Analytic: 50, Shape: 100},
	}
	if scores.Mean() != 75 {
		t.Errorf("expected a mean of 75, got %f", scores.Mean())
	}
	if (ScoreSet{}).Mean() != 0 {
		t.Errorf("expected an empty score set to score 0, got %f", (ScoreSet{}).Mean())
	}
}
