package alias

import (
	"path/filepath"
	"strings"
)

// Rule maps a canonical path prefix to an alias prefix, e.g. src/db -> @/db.
type Rule struct {
	Prefix string `yaml:"prefix"`
	Alias  string `yaml:"alias"`
}

// Table is an ordered list of rules. Order is significant: the first rule
// whose prefix matches wins, so more specific prefixes must be declared
// before the prefixes they extend.
type Table struct {
	rules []Rule
}

func NewTable(rules []Rule) *Table {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		normalized = append(normalized, Rule{
			Prefix: strings.Trim(filepath.ToSlash(r.Prefix), "/"),
			Alias:  strings.TrimSuffix(r.Alias, "/"),
		})
	}
	return &Table{rules: normalized}
}

func (t *Table) Rules() []Rule {
	return t.rules
}

func (t *Table) Len() int {
	return len(t.rules)
}

// Apply maps a canonical path to its alias-qualified specifier. A rule
// matches on the exact prefix or on a directory boundary; output always
// uses forward slashes. Returns false when no rule matches, in which case
// the caller must leave the original specifier alone.
func (t *Table) Apply(path string) (string, bool) {
	p := filepath.ToSlash(path)
	for _, r := range t.rules {
		if p == r.Prefix {
			return r.Alias, true
		}
		if strings.HasPrefix(p, r.Prefix+"/") {
			return r.Alias + p[len(r.Prefix):], true
		}
	}
	return "", false
}

// Reverse maps an alias-qualified specifier back to the canonical path it
// encodes. Same first-match-wins ordering as Apply.
func (t *Table) Reverse(specifier string) (string, bool) {
	for _, r := range t.rules {
		if specifier == r.Alias {
			return r.Prefix, true
		}
		if strings.HasPrefix(specifier, r.Alias+"/") {
			return r.Prefix + specifier[len(r.Alias):], true
		}
	}
	return "", false
}
