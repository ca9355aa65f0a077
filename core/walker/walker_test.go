package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0644))
}

func TestWalk(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "src/a.ts")
	writeFile(t, repo, "src/sub/b.tsx")
	writeFile(t, repo, "src/node_modules/pkg/index.ts")
	writeFile(t, repo, "src/readme.md")
	writeFile(t, repo, "app/routes/home.jsx")
	writeFile(t, repo, "scripts/tool.ts") // outside the configured roots

	w := New(
		[]string{"src", "app"},
		[]string{".ts", ".tsx", ".js", ".jsx"},
		[]string{".git", "node_modules"},
	)

	var visited []string
	err := w.Walk(repo, func(absPath, relPath string) error {
		visited = append(visited, relPath)
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"src/a.ts",
		"src/sub/b.tsx",
		"app/routes/home.jsx",
	}, visited)
}

func TestWalkMissingRoot(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "src/a.ts")

	w := New([]string{"src", "app"}, []string{".ts"}, nil)

	var visited []string
	err := w.Walk(repo, func(absPath, relPath string) error {
		visited = append(visited, relPath)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.ts"}, visited)
}
