package models

import "github.com/modfence/modfence/core/classify"

// Violation is one boundary-rule hit, classified by the relationship
// between the source file's module and the import's target module.
type Violation struct {
	File           string                  `json:"file"`
	Line           int                     `json:"line"`
	Import         string                  `json:"import"`
	TargetModule   string                  `json:"target_module,omitempty"`
	Classification classify.Classification `json:"classification"`
}

// GroupByClassification buckets violations preserving input order within
// each bucket.
func GroupByClassification(violations []Violation) map[classify.Classification][]Violation {
	grouped := make(map[classify.Classification][]Violation)
	for _, v := range violations {
		grouped[v.Classification] = append(grouped[v.Classification], v)
	}
	return grouped
}
