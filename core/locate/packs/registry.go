package packs

import (
	"context"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/glyph"
)

// Registry is a type for holding font packs, and the alphabets decoded
// from them, for re-use across identification runs.
type Registry struct {
	sync.Mutex
	packs     map[string]*Pack
	alphabets map[string]*glyph.Set
}

var globalPackRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold the font packs
// and alphabets loaded so far.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalPackRegistry = NewRegistry()
	})
	return globalPackRegistry
}

func NewRegistry() *Registry {
	pr := &Registry{
		packs:     make(map[string]*Pack),
		alphabets: make(map[string]*glyph.Set),
	}
	return pr
}

// StorePack pushes a pack into the registry if it isn't contained yet.
//
// The pack will be stored using its location as a key. If this key is
// already associated with a pack, that pack will not be overridden.
func (pr *Registry) StorePack(p *Pack) {
	if p == nil {
		tracer().Errorf("registry cannot store null pack")
		return
	}
	pr.Lock()
	defer pr.Unlock()
	if _, ok := pr.packs[p.Location]; !ok {
		tracer().Debugf("registry stores font %q from %s", p.Name, p.Location)
		pr.packs[p.Location] = p
	}
}

// Pack returns the pack previously stored for a location, or nil if the
// location is unknown.
func (pr *Registry) Pack(location string) *Pack {
	pr.Lock()
	defer pr.Unlock()
	return pr.packs[location]
}

// Alphabet returns the reference alphabet of the pack stored for a
// location. If the alphabet has already been decoded, Alphabet will
// return the cached glyph set; otherwise it is decoded from the stored
// pack and cached.
//
// Callers share the returned set and must not modify it. Work on a clone
// instead.
func (pr *Registry) Alphabet(ctx context.Context, location string) (*glyph.Set, error) {
	tracer().Debugf("registry searches for alphabet of %s", location)
	pr.Lock()
	defer pr.Unlock()
	if set, ok := pr.alphabets[location]; ok {
		tracer().Infof("registry found alphabet of %s", location)
		return set, nil
	}
	if p, ok := pr.packs[location]; ok {
		set, err := p.Alphabet(ctx)
		if err != nil {
			return nil, err
		}
		tracer().Infof("registry has pack %q, caches its alphabet", p.Name)
		pr.alphabets[location] = set
		return set, nil
	}
	tracer().Infof("registry does not contain pack for %s", location)
	return nil, core.Error(core.EINTERNAL, "pack %s not found in registry", location)
}

// LogPackList is a helper function to dump the list of known packs and
// alphabets in a registry to the trace-file (log-level Info).
func (pr *Registry) LogPackList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered packs ---")
	for k, v := range pr.packs {
		tracer().Infof("pack [%s] = %v", k, v.Name)
	}
	for k, v := range pr.alphabets {
		tracer().Infof("alphabet [%s] = %d glyphs", k, v.Len())
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
