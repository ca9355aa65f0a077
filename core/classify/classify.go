package classify

import (
	"encoding/json"
	"path/filepath"

	"github.com/modfence/modfence/core/alias"
	"github.com/modfence/modfence/core/modules"
	"github.com/modfence/modfence/core/paths"
)

// Classification relates the module owning a source file to the module its
// import targets.
type Classification int

const (
	// SameModule: a module importing its own internals. Usually a lint
	// rule tripping on intra-module layering rather than a real breach.
	SameModule Classification = iota
	// CrossModule: a genuine boundary breach into another module.
	CrossModule
	// Other: the source file or the import target is not owned by any
	// module, or the target cannot be determined at all.
	Other
)

func (c Classification) String() string {
	switch c {
	case SameModule:
		return "same-module"
	case CrossModule:
		return "cross-module"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

func (c Classification) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Classifier applies the module-boundary decision table to (source file,
// import specifier) pairs.
type Classifier struct {
	table       *alias.Table
	modulesRoot string
}

func New(table *alias.Table, modulesRoot string) *Classifier {
	return &Classifier{table: table, modulesRoot: modulesRoot}
}

// TargetPath derives the canonical path an import specifier points at.
// Alias-qualified specifiers are reverse-mapped through the alias table;
// relative specifiers are resolved against the containing file. Everything
// else (bare package names) has no determinable target.
func (c *Classifier) TargetPath(sourceFile, specifier string) (string, bool) {
	if p, ok := c.table.Reverse(specifier); ok {
		return p, true
	}
	if p, err := paths.Resolve(sourceFile, specifier); err == nil {
		return p, true
	}
	return "", false
}

// Classify never fails: every pair lands in exactly one bucket.
//
//	source module | target module | result
//	defined       | same          | SameModule
//	defined       | different     | CrossModule
//	undefined     | any           | Other
//	any           | undefined     | Other
//
// The target module is returned whenever it can be determined, including
// for Other (e.g. a non-module file importing module internals).
func (c *Classifier) Classify(sourceFile, specifier string) (Classification, string) {
	sourceModule, sourceOK := modules.Of(filepath.ToSlash(sourceFile), c.modulesRoot)

	targetPath, ok := c.TargetPath(sourceFile, specifier)
	if !ok {
		return Other, ""
	}
	targetModule, targetOK := modules.Of(targetPath, c.modulesRoot)

	if !sourceOK || !targetOK {
		return Other, targetModule
	}
	if sourceModule == targetModule {
		return SameModule, targetModule
	}
	return CrossModule, targetModule
}
