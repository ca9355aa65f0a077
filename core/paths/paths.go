package paths

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrNotRelative signals a specifier this resolver does not apply to
	// (bare package names, alias-qualified specifiers). Callers are
	// expected to check for it, not treat it as a failure.
	ErrNotRelative = errors.New("specifier is not relative")

	// ErrOutOfBounds signals a relative specifier that walks above the
	// repository root. The original specifier must be left untouched.
	ErrOutOfBounds = errors.New("specifier resolves above the repository root")
)

// Resolve turns a relative import specifier into a canonical path relative
// to the repository root. containingFile must itself be root-relative.
// Resolution is purely lexical: segments are joined and normalized without
// touching the filesystem.
func Resolve(containingFile, specifier string) (string, error) {
	spec := filepath.ToSlash(specifier)
	if !strings.HasPrefix(spec, ".") {
		return "", ErrNotRelative
	}

	dir := path.Dir(filepath.ToSlash(containingFile))
	joined := path.Join(dir, spec)

	if joined == ".." || strings.HasPrefix(joined, "../") {
		return "", ErrOutOfBounds
	}
	if joined == "." {
		// The repository root itself.
		return "", nil
	}
	return joined, nil
}
