package packs

import (
	"context"
	"encoding/json"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/glyph"
	"github.com/npillmayer/typefont/core/imaging"
	"golang.org/x/text/unicode/norm"
)

// Pack is the stored form of a single corpus font: a metadata object plus
// one embedded-encoded reference glyph image per symbol.
type Pack struct {
	Name     string                 // corpus name of the font
	Location string                 // where the pack document came from
	Meta     map[string]interface{} // free-form font metadata
	Alpha    map[string]string      // symbol label to embedded-encoded glyph image
}

// ParsePack decodes a font pack document. name is the corpus name of the
// font, source the document's origin; it doubles as the pack's location.
// The document is a JSON object with members 'meta' and 'alpha':
//
//    {
//      "meta":  { "name": "Arial" },
//      "alpha": { "a": "data:image/png;base64,…", "b": "…" }
//    }
//
func ParsePack(data []byte, name, source string) (*Pack, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, core.ParseError(err, source)
	}
	pack := &Pack{Name: name, Location: source}
	raw, ok := doc["alpha"]
	if !ok {
		return nil, core.SchemaError(source, "font pack")
	}
	if err := json.Unmarshal(raw, &pack.Alpha); err != nil {
		return nil, core.SchemaError(source, "font pack")
	}
	if raw, ok := doc["meta"]; ok {
		if err := json.Unmarshal(raw, &pack.Meta); err != nil {
			return nil, core.SchemaError(source, "font pack")
		}
	}
	return pack, nil
}

// DisplayName returns the name the font presents to users: the 'name'
// member of its metadata if present, the corpus name otherwise.
func (p *Pack) DisplayName() string {
	if n, ok := p.Meta["name"].(string); ok && n != "" {
		return n
	}
	return p.Name
}

// Alphabet decodes the embedded reference glyphs of the pack into a glyph
// set. Labels are normalized to NFC, matching the normalization of
// recognized glyphs.
func (p *Pack) Alphabet(ctx context.Context) (*glyph.Set, error) {
	set := glyph.NewSet()
	for label, data := range p.Alpha {
		s, err := imaging.Encoded(data).Resolve(ctx)
		if err != nil {
			return nil, core.WrapError(err, core.ELOAD,
				"cannot decode glyph %q of font %q", label, p.Name)
		}
		set.Put(&glyph.Image{
			Label:      norm.NFC.String(label),
			Surface:    s,
			Confidence: 100,
		})
	}
	tracer().Debugf("font %q provides %d reference glyphs", p.Name, set.Len())
	return set, nil
}
