package models

// RewriteCandidate is a messy relative import the rewrite pass would
// replace, reported by the audit without touching the file.
type RewriteCandidate struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Import   string `json:"import"`
	Proposed string `json:"proposed"`
}

// Audit is the result of a live-tree scan: deep imports into foreign
// modules plus pending rewrite candidates.
type Audit struct {
	FilesScanned int                `json:"files_scanned"`
	Violations   []Violation        `json:"violations"`
	Candidates   []RewriteCandidate `json:"rewrite_candidates"`
}
