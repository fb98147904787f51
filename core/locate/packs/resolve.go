package packs

import (
	"context"
	"path"
)

// Layout describes where a repository keeps its documents, relative to
// the fetcher's root:
//
//    <dir>/<index>
//    <dir>/<font name>/<data>
//
type Layout struct {
	Dir   string // sub-directory holding the fonts, default "fonts"
	Index string // name of the corpus index document, default "index.json"
	Data  string // name of a font's pack document, default "data.json"
}

// DefaultLayout returns the layout used by the reference corpora.
func DefaultLayout() Layout {
	return Layout{
		Dir:   "fonts",
		Index: "index.json",
		Data:  "data.json",
	}
}

// Repository is the entry to a font corpus: an index document naming the
// stored fonts, plus one pack document per font.
type Repository struct {
	fetcher Fetcher
	layout  Layout
}

// NewRepository creates a repository reading through fetcher. Zero-valued
// document names of the layout fall back to the defaults; an empty Dir is
// taken literally, meaning the corpus lives at the fetcher's root.
func NewRepository(fetcher Fetcher, layout Layout) *Repository {
	if layout.Index == "" {
		layout.Index = "index.json"
	}
	if layout.Data == "" {
		layout.Data = "data.json"
	}
	return &Repository{fetcher: fetcher, layout: layout}
}

func (r *Repository) indexPath() string {
	return path.Join(r.layout.Dir, r.layout.Index)
}

func (r *Repository) packPath(name string) string {
	return path.Join(r.layout.Dir, name, r.layout.Data)
}

// --- Index promise ----------------------------------------------------

type indexPlusErr struct {
	index *Index
	err   error
}

// IndexPromise resolves to the corpus index, fetched in the background.
type IndexPromise interface {
	// Index blocks until the corpus index has been fetched and decoded.
	Index(ctx context.Context) (*Index, error)
}

type indexLoader struct {
	await func(ctx context.Context) (*Index, error)
}

func (loader indexLoader) Index(ctx context.Context) (*Index, error) {
	return loader.await(ctx)
}

// ResolveIndex starts fetching and decoding the corpus index in the
// background and returns a promise for it.
func (r *Repository) ResolveIndex() IndexPromise {
	ch := make(chan indexPlusErr, 1) // buffered, the promise may go unawaited
	go func(ch chan<- indexPlusErr) {
		result := indexPlusErr{}
		where := r.fetcher.Where(r.indexPath())
		tracer().Debugf("resolving corpus index from %s", where)
		data, err := r.fetcher.Fetch(context.Background(), r.indexPath())
		if err != nil {
			result.err = err
		} else {
			result.index, result.err = ParseIndex(data, where)
		}
		ch <- result
		close(ch)
	}(ch)
	return indexLoader{
		await: func(ctx context.Context) (*Index, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case result := <-ch:
				return result.index, result.err
			}
		},
	}
}

// --- Pack promise -----------------------------------------------------

type packPlusErr struct {
	pack *Pack
	err  error
}

// PackPromise resolves to a single font pack, fetched in the background.
type PackPromise interface {
	// Pack blocks until the pack document has been fetched and decoded.
	Pack(ctx context.Context) (*Pack, error)
}

type packLoader struct {
	await func(ctx context.Context) (*Pack, error)
}

func (loader packLoader) Pack(ctx context.Context) (*Pack, error) {
	return loader.await(ctx)
}

// ResolvePack starts fetching and decoding the pack document of a font in
// the background and returns a promise for it. Fetched packs end up in the
// global registry, so that a corpus is transferred at most once.
func (r *Repository) ResolvePack(name string) PackPromise {
	ch := make(chan packPlusErr, 1) // buffered, the promise may go unawaited
	go func(ch chan<- packPlusErr) {
		result := packPlusErr{}
		where := r.fetcher.Where(r.packPath(name))
		if p := GlobalRegistry().Pack(where); p != nil {
			tracer().Debugf("font %q found in registry", name)
			result.pack = p
			ch <- result
			close(ch)
			return
		}
		tracer().Debugf("resolving font %q from %s", name, where)
		data, err := r.fetcher.Fetch(context.Background(), r.packPath(name))
		if err != nil {
			result.err = err
		} else {
			result.pack, result.err = ParsePack(data, name, where)
		}
		if result.pack != nil {
			GlobalRegistry().StorePack(result.pack)
		}
		ch <- result
		close(ch)
	}(ch)
	return packLoader{
		await: func(ctx context.Context) (*Pack, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case result := <-ch:
				return result.pack, result.err
			}
		},
	}
}
