package scanner

import (
	"regexp"
	"strings"

	"github.com/modfence/modfence/core/models"
)

// specifierPattern matches the three shapes that carry an import specifier:
// import ... from '...', export ... from '...', require('...'). This is a
// textual contract, not a parser: a shape appearing verbatim inside a
// comment still matches, same as the lint tooling it mirrors. Group layout:
// 1-3 import, 4-6 export, 7-9 require, middle group is the specifier.
var specifierPattern = regexp.MustCompile(
	`(import\s+[^'"]*?from\s*['"])([^'"]+)(['"])` +
		`|(export\s+[^'"]*?from\s*['"])([^'"]+)(['"])` +
		`|(require\(\s*['"])([^'"]+)(['"])`,
)

// specifier submatch index pairs for each alternative, in
// FindAllStringSubmatchIndex layout.
var specGroups = []struct {
	start, end int
	kind       models.ImportKind
}{
	{4, 5, models.KindImport},
	{10, 11, models.KindExport},
	{16, 17, models.KindRequire},
}

// Scan extracts every import specifier occurrence from content. file is
// recorded on each occurrence as-is; line numbers are 1-based.
func Scan(file, content string) []models.ImportOccurrence {
	var occurrences []models.ImportOccurrence
	forEach(content, func(occ models.ImportOccurrence, start, end int) {
		occ.File = file
		occurrences = append(occurrences, occ)
	})
	return occurrences
}

// RewriteContent invokes fn for every occurrence and substitutes the
// returned specifier where fn accepts. Only the quoted specifier substring
// changes; the surrounding statement, bindings and quote style are
// preserved byte-for-byte. Returns the new content and the number of
// substitutions applied.
func RewriteContent(file, content string, fn func(models.ImportOccurrence) (string, bool)) (string, int) {
	var b strings.Builder
	last := 0
	applied := 0

	forEach(content, func(occ models.ImportOccurrence, start, end int) {
		occ.File = file
		replacement, ok := fn(occ)
		if !ok {
			return
		}
		b.WriteString(content[last:start])
		b.WriteString(replacement)
		last = end
		applied++
	})

	if applied == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), applied
}

func forEach(content string, visit func(occ models.ImportOccurrence, start, end int)) {
	matches := specifierPattern.FindAllStringSubmatchIndex(content, -1)
	line := 1
	scanned := 0

	for _, m := range matches {
		for _, g := range specGroups {
			if m[g.start] < 0 {
				continue
			}
			start, end := m[g.start], m[g.end]
			line += strings.Count(content[scanned:start], "\n")
			scanned = start

			visit(models.ImportOccurrence{
				Specifier: content[start:end],
				Line:      line,
				Kind:      g.kind,
			}, start, end)
			break
		}
	}
}
