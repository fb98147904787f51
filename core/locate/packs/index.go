package packs

import (
	"encoding/json"
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/typefont/core"
)

// Index lists the fonts of a corpus, keeping the order of the index
// document. Name lookup and prefix search run over a trie.
type Index struct {
	names  []string
	byName *trie.Trie
}

// NewIndex creates an index from a list of font names. Duplicate names
// are listed once.
func NewIndex(names []string) *Index {
	x := &Index{byName: trie.New()}
	for _, name := range names {
		if _, ok := x.byName.Find(name); ok {
			tracer().Infof("font %q listed twice in the corpus index", name)
			continue
		}
		x.names = append(x.names, name)
		x.byName.Add(name, nil)
	}
	return x
}

// ParseIndex decodes a corpus index document; source names the document's
// origin for error messages. The document is a JSON object with a single
// member 'index' holding the list of font names:
//
//    { "index": [ "Arial", "Times New Roman" ] }
//
func ParseIndex(data []byte, source string) (*Index, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, core.ParseError(err, source)
	}
	raw, ok := doc["index"]
	if !ok {
		return nil, core.SchemaError(source, "font index")
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, core.SchemaError(source, "font index")
	}
	return NewIndex(names), nil
}

// Len returns the number of fonts in the index.
func (x *Index) Len() int {
	return len(x.names)
}

// Names returns the font names in index order.
func (x *Index) Names() []string {
	names := make([]string, len(x.names))
	copy(names, x.names)
	return names
}

// Contains checks whether the index lists a font name.
func (x *Index) Contains(name string) bool {
	_, ok := x.byName.Find(name)
	return ok
}

// WithPrefix returns all font names starting with prefix, in
// lexicographic order.
func (x *Index) WithPrefix(prefix string) []string {
	names := x.byName.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}
