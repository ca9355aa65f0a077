package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0644))

	fc, err := New(16)
	require.NoError(t, err)

	assert.False(t, fc.Unchanged(path), "nothing recorded yet")

	fc.Remember(path)
	assert.True(t, fc.Unchanged(path))

	// A different size invalidates the recorded state.
	require.NoError(t, os.WriteFile(path, []byte("export { changed };\n"), 0644))
	assert.False(t, fc.Unchanged(path))

	fc.Remember(path)
	assert.True(t, fc.Unchanged(path))

	// Same size, different mtime.
	newTime := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, newTime, newTime))
	assert.False(t, fc.Unchanged(path))
}

func TestFileCacheInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	fc, err := New(16)
	require.NoError(t, err)

	fc.Remember(path)
	require.True(t, fc.Unchanged(path))

	fc.Invalidate(path)
	assert.False(t, fc.Unchanged(path))

	fc.Remember(path)
	fc.Clear()
	assert.False(t, fc.Unchanged(path))
}

func TestFileCacheMissingFile(t *testing.T) {
	fc, err := New(16)
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "gone.ts")
	assert.False(t, fc.Unchanged(missing))
	fc.Remember(missing) // must not panic or record anything
	assert.False(t, fc.Unchanged(missing))
}
