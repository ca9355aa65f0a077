package walker

import (
	"os"
	"path/filepath"

	"github.com/modfence/modfence/core/logger"
)

// SourceWalker walks the configured roots for recognized source files,
// pruning ignored directories.
type SourceWalker struct {
	Roots      []string
	Extensions []string
	Ignore     []string
}

func New(roots, extensions, ignore []string) *SourceWalker {
	return &SourceWalker{
		Roots:      roots,
		Extensions: extensions,
		Ignore:     ignore,
	}
}

// Walk visits every recognized file under each root, relative to repoRoot.
// fn receives the absolute path and the repo-relative slash path. Errors
// accessing individual entries are logged and the walk continues; only an
// error returned by fn aborts it.
func (w *SourceWalker) Walk(repoRoot string, fn func(absPath, relPath string) error) error {
	for _, root := range w.Roots {
		rootDir := filepath.Join(repoRoot, root)
		if _, err := os.Stat(rootDir); err != nil {
			logger.Debug("Walk root %s not accessible, skipping: %v", rootDir, err)
			continue
		}

		err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				logger.Warn("Failed to access %s: %v", path, err)
				return nil
			}

			if info.IsDir() {
				if w.ignored(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if w.ignored(info.Name()) || !w.recognized(path) {
				return nil
			}

			relPath, err := filepath.Rel(repoRoot, path)
			if err != nil {
				return err
			}
			return fn(path, filepath.ToSlash(relPath))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *SourceWalker) ignored(name string) bool {
	for _, ex := range w.Ignore {
		if name == ex {
			return true
		}
	}
	return false
}

func (w *SourceWalker) recognized(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
