package doccache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div class="px-4"></div>`), 0644))

	c := New(nil)
	defer c.Close()

	data, err := c.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<div class="px-4"></div>`, string(data))

	doc, err := c.Get(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
}

func TestGetCachesDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	c := New(nil)
	defer c.Close()

	_, err := c.Get(path)
	require.NoError(t, err)
	_, err = c.Get(path)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Size())
	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestGetMissingFile(t *testing.T) {
	c := New(nil)
	defer c.Close()

	_, err := c.Get(filepath.Join(t.TempDir(), "nope.html"))
	require.Error(t, err)
}

func TestEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.html")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	c := New(nil)
	defer c.Close()

	data, err := c.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCloseClearsCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	c := New(nil)
	_, err := c.Get(path)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	assert.Equal(t, 0, c.Size())

	// Reusable after Close; the document is remapped.
	data, err := c.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	require.NoError(t, c.Close())
}
