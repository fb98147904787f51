package packs

import (
	"context"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typefont/core"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type RepositoryTestEnviron struct {
	suite.Suite
	root string
	repo *Repository
}

// listen for 'go test' command --> run test methods
func TestRepository(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	suite.Run(t, new(RepositoryTestEnviron))
}

// run once, before test suite methods
func (env *RepositoryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	env.root = env.T().TempDir()
	ink := color.RGBA{0x00, 0x00, 0x00, 0xff}
	writeCorpus(env.T(), env.root, map[string][]byte{
		"fonts/index.json": []byte(`{ "index": [ "Demo", "Other" ] }`),
		"fonts/Demo/data.json": packDocument(env.T(),
			map[string]interface{}{"name": "Demo Sans"},
			map[string]string{"a": encodedSquare(env.T(), ink)}),
	})
	env.repo = NewRepository(DirFetcher{Root: env.root}, DefaultLayout())
}

func writeCorpus(t *testing.T, root string, files map[string][]byte) {
	for name, data := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// --- Tests -----------------------------------------------------------------

func (env *RepositoryTestEnviron) TestResolveIndex() {
	index, err := env.repo.ResolveIndex().Index(context.Background())
	env.Require().NoError(err)
	env.Equal(2, index.Len(), "expected the index to list 2 fonts")
	env.True(index.Contains("Demo"), "expected the index to list 'Demo'")
}

func (env *RepositoryTestEnviron) TestResolvePack() {
	pack, err := env.repo.ResolvePack("Demo").Pack(context.Background())
	env.Require().NoError(err)
	env.Equal("Demo Sans", pack.DisplayName())
	alphabet, err := pack.Alphabet(context.Background())
	env.Require().NoError(err)
	env.Equal(1, alphabet.Len(), "expected 1 reference glyph")
}

func (env *RepositoryTestEnviron) TestResolveMissingPack() {
	_, err := env.repo.ResolvePack("Nope").Pack(context.Background())
	env.Equal(core.ELOAD, core.Code(err), "expected an ELOAD error for a missing pack")
}

// --- HTTP fetching ---------------------------------------------------------

func TestRepositoryOverHTTP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typefont.packs")
	defer teardown()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/corpus/fonts/index.json" {
			w.Write([]byte(`{ "index": [ "Demo" ] }`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()
	repo := NewRepository(HTTPFetcher{Base: srv.URL + "/corpus"}, DefaultLayout())
	index, err := repo.ResolveIndex().Index(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if index.Len() != 1 || !index.Contains("Demo") {
		t.Errorf("unexpected index: %v", index.Names())
	}
	_, err = repo.ResolvePack("Demo").Pack(context.Background())
	if core.Code(err) != core.ELOAD {
		t.Errorf("expected an ELOAD error for the missing pack, got %v", err)
	}
}
