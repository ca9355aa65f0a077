package rewrite

import (
	"path"
	"path/filepath"
	"strings"
)

// Engine decides whether a relative import specifier should be replaced by
// its alias-qualified form. The policy is a conservative allow-list, not a
// blanket replace-every-relative-import: shallow sibling imports stay
// relative.
type Engine struct {
	legacyRoots map[string]struct{}
}

func NewEngine(legacyRoots []string) *Engine {
	set := make(map[string]struct{}, len(legacyRoots))
	for _, root := range legacyRoots {
		set[root] = struct{}{}
	}
	return &Engine{legacyRoots: set}
}

// Decide accepts the rewrite when the original specifier traverses up at
// least two directory levels, or when it routes through a legacy root
// directory. Rejects when no alias resolved or the alias changes nothing,
// which also makes a second pass over rewritten files a no-op.
func (e *Engine) Decide(original, proposed string) bool {
	if proposed == "" || proposed == original {
		return false
	}
	spec := filepath.ToSlash(original)
	if strings.Contains(spec, "../../") {
		return true
	}
	return e.hasLegacySegment(spec)
}

// hasLegacySegment reports whether a legacy root name appears as a
// directory segment of the normalized specifier. The final segment is the
// imported file itself and does not count.
func (e *Engine) hasLegacySegment(spec string) bool {
	segments := strings.Split(path.Clean(spec), "/")
	for i, segment := range segments {
		if i == len(segments)-1 {
			break
		}
		if segment == "." || segment == ".." {
			continue
		}
		if _, ok := e.legacyRoots[segment]; ok {
			return true
		}
	}
	return false
}
