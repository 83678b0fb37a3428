package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<div></div>")
	writeFile(t, root, "pages/about.html", "<div></div>")
	writeFile(t, root, "src/app.tsx", "export {}")
	writeFile(t, root, "node_modules/pkg/x.html", "<div></div>")
	writeFile(t, root, "dist/out.html", "<div></div>")
	writeFile(t, root, "notes.txt", "n/a")

	files, err := Discover(root, DefaultScanConfig())
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"index.html", "pages/about.html", "src/app.tsx"}, rels)
}

func TestDiscoverSortedOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.html", "")
	writeFile(t, root, "a.html", "")
	writeFile(t, root, "c.html", "")

	files, err := Discover(root, DefaultScanConfig())
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.True(t, files[0] < files[1] && files[1] < files[2])
}

func TestDiscoverInvalidPattern(t *testing.T) {
	_, err := Discover(t.TempDir(), ScanConfig{Include: []string{"[bad"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestDiscoverCustomConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", "")
	writeFile(t, root, "b.tsx", "")

	files, err := Discover(root, ScanConfig{Include: []string{"**/*.tsx"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "b.tsx")
}
