package modules

import (
	"path/filepath"
	"strings"
)

// Of returns the owning module of a canonical path: the first path segment
// below modulesRoot. Returns false for paths outside the modules root and
// for the modules root itself.
func Of(path, modulesRoot string) (string, bool) {
	if modulesRoot == "" {
		return "", false
	}
	p := filepath.ToSlash(path)
	root := strings.TrimSuffix(filepath.ToSlash(modulesRoot), "/")
	if !strings.HasPrefix(p, root+"/") {
		return "", false
	}

	rest := p[len(root)+1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
