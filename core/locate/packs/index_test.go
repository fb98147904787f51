package packs

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typefont/core"
)

func TestParseIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	doc := []byte(`{ "index": [ "Arial", "Times New Roman", "Andale Mono" ] }`)
	index, err := ParseIndex(doc, "index.json")
	if err != nil {
		t.Fatal(err)
	}
	if index.Len() != 3 {
		t.Fatalf("expected 3 fonts in the index, got %d", index.Len())
	}
	expected := []string{"Arial", "Times New Roman", "Andale Mono"}
	if !reflect.DeepEqual(index.Names(), expected) {
		t.Errorf("expected names in document order, got %v", index.Names())
	}
	if !index.Contains("Arial") || index.Contains("Helvetica") {
		t.Error("unexpected index membership")
	}
}

func TestParseIndexGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	_, err := ParseIndex([]byte("not json at all"), "index.json")
	if core.Code(err) != core.EPARSE {
		t.Errorf("expected an EPARSE error, got %v", err)
	}
}

func TestParseIndexWrongShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	for _, doc := range []string{
		`{ "fonts": [ "Arial" ] }`,
		`{ "index": 42 }`,
		`{ "index": { "Arial": true } }`,
	} {
		if _, err := ParseIndex([]byte(doc), "index.json"); core.Code(err) != core.ESCHEMA {
			t.Errorf("expected an ESCHEMA error for %s, got %v", doc, err)
		}
	}
}

func TestIndexPrefixSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	index := NewIndex([]string{"Andale Mono", "Arial", "Arial Black", "Courier"})
	arials := index.WithPrefix("Arial")
	if !reflect.DeepEqual(arials, []string{"Arial", "Arial Black"}) {
		t.Errorf("unexpected prefix search result: %v", arials)
	}
}

func TestIndexDuplicateNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	index := NewIndex([]string{"Arial", "Arial"})
	if index.Len() != 1 {
		t.Errorf("expected duplicates to be listed once, got %d entries", index.Len())
	}
}
