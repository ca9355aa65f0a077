package models

// ImportKind tags which of the three syntactic shapes produced an
// occurrence.
type ImportKind string

const (
	KindImport  ImportKind = "import"
	KindExport  ImportKind = "export"
	KindRequire ImportKind = "require"
)

// ImportOccurrence is one specifier found in a source buffer. Ephemeral:
// produced per scan pass, never persisted.
type ImportOccurrence struct {
	File      string // containing file, repo-relative
	Specifier string
	Line      int // 1-based
	Kind      ImportKind
}

// RewritePlan pairs an occurrence with the specifier proposed for it.
// Accepted plans are applied immediately by text substitution; rejected
// plans are discarded.
type RewritePlan struct {
	Occurrence ImportOccurrence
	Proposed   string
	Accepted   bool
}
