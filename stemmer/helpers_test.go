package stemmer

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/tl-nlp/tglstem/data"
)

// embeddedFS copies the embedded resources into a MapFS so tests can
// replace or extend single files.
func embeddedFS(t testing.TB) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	entries, err := fs.ReadDir(data.FS, ".")
	require.NoError(t, err)
	for _, e := range entries {
		b, err := fs.ReadFile(data.FS, e.Name())
		require.NoError(t, err)
		fsys[e.Name()] = &fstest.MapFile{Data: b}
	}
	return fsys
}

// testResources loads the embedded resources with extra dictionary roots.
func testResources(t testing.TB, extraWords ...string) *Resources {
	t.Helper()
	fsys := embeddedFS(t)
	if len(extraWords) > 0 {
		words := string(fsys[WordFile].Data) + "\n" + strings.Join(extraWords, "\n") + "\n"
		fsys[WordFile] = &fstest.MapFile{Data: []byte(words)}
	}
	res, err := Load(fsys)
	require.NoError(t, err)
	return res
}

func newTestStemmer(t testing.TB, cfg Config, extraWords ...string) *Stemmer {
	t.Helper()
	s, err := New(testResources(t, extraWords...), cfg)
	require.NoError(t, err)
	return s
}

func roots(stems []Stem) []string {
	out := make([]string, len(stems))
	for i, s := range stems {
		out[i] = s.Root
	}
	return out
}
