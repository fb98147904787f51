package packs

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/npillmayer/typefont/core"
)

// Fetcher retrieves raw corpus documents by their repository-relative
// path, e.g. 'fonts/Arial/data.json'.
type Fetcher interface {
	// Fetch retrieves the document stored under name.
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Where names the location of a document for error messages.
	Where(name string) string
}

// DirFetcher retrieves corpus documents from a local directory tree.
type DirFetcher struct {
	Root string // base directory of the corpus
}

// Fetch reads the document stored under name.
func (f DirFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(f.Where(name))
	if err != nil {
		return nil, core.LoadError(err, f.Where(name))
	}
	return data, nil
}

// Where returns the file path of a document.
func (f DirFetcher) Where(name string) string {
	return filepath.Join(f.Root, filepath.FromSlash(name))
}

// HTTPFetcher retrieves corpus documents from a remote location. With
// caching enabled, a document is downloaded once into the user's cache
// directory and read from there afterwards.
type HTTPFetcher struct {
	Base  string // base URL of the corpus
	Cache bool   // cache downloaded documents on disk
}

// Fetch downloads the document stored under name, possibly from the local
// cache.
func (f HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := f.Where(name)
	if !f.Cache {
		return fetchURL(ctx, url)
	}
	dir, err := CacheDirPath("packs", path.Dir(name))
	if err != nil {
		return nil, core.LoadError(err, url)
	}
	cached := filepath.Join(dir, path.Base(name))
	if _, err := os.Stat(cached); err != nil {
		if err = DownloadCachedFile(cached, url); err != nil {
			return nil, core.LoadError(err, url)
		}
	} else {
		tracer().Debugf("font document cached at %s", cached)
	}
	data, err := os.ReadFile(cached)
	if err != nil {
		return nil, core.LoadError(err, url)
	}
	return data, nil
}

// Where returns the URL of a document.
func (f HTTPFetcher) Where(name string) string {
	return strings.TrimSuffix(f.Base, "/") + "/" + name
}

func fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, core.LoadError(err, url)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, core.LoadError(err, url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, core.Error(core.ELOAD, "cannot load %q: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.LoadError(err, url)
	}
	return data, nil
}
