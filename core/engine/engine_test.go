package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/modfence/modfence/core/classify"
	"github.com/modfence/modfence/core/config"
	"github.com/modfence/modfence/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, repo, rel, content string) string {
	t.Helper()
	path := filepath.Join(repo, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func testEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	repo := t.TempDir()
	cfg := config.Default()
	cfg.RepoRoot = repo
	return New(cfg), repo
}

const invoiceSource = `import React from 'react';
import { Friend } from '../../../db/models/Friend';
import { helper } from './helpers';
export { Bar } from "../../../../src/db/models/Bar";
`

const invoiceRewritten = `import React from 'react';
import { Friend } from '@/db/models/Friend';
import { helper } from './helpers';
export { Bar } from "@/db/models/Bar";
`

func TestRewriteTree(t *testing.T) {
	eng, repo := testEngine(t)

	invoice := writeFile(t, repo, "src/modules/billing/ui/Invoice.tsx", invoiceSource)
	local := writeFile(t, repo, "src/modules/billing/ui/helpers.ts",
		"import { format } from './format';\n")
	escape := writeFile(t, repo, "src/escape.ts",
		"import { x } from '../../outside';\n")

	stats, err := eng.RewriteTree(false)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesRewritten)
	assert.Equal(t, 2, stats.Rewrites)

	assert.Equal(t, invoiceRewritten, readFile(t, invoice))
	// Shallow local imports and out-of-bounds specifiers are left alone.
	assert.Equal(t, "import { format } from './format';\n", readFile(t, local))
	assert.Equal(t, "import { x } from '../../outside';\n", readFile(t, escape))
}

func TestRewriteTreeIdempotent(t *testing.T) {
	eng, repo := testEngine(t)
	invoice := writeFile(t, repo, "src/modules/billing/ui/Invoice.tsx", invoiceSource)

	_, err := eng.RewriteTree(false)
	require.NoError(t, err)
	first := readFile(t, invoice)

	stats, err := eng.RewriteTree(false)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Rewrites)
	assert.Equal(t, 0, stats.FilesRewritten)
	assert.Equal(t, first, readFile(t, invoice))
}

func TestRewriteTreeDryRun(t *testing.T) {
	eng, repo := testEngine(t)
	invoice := writeFile(t, repo, "src/modules/billing/ui/Invoice.tsx", invoiceSource)

	stats, err := eng.RewriteTree(true)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Rewrites)
	assert.Equal(t, invoiceSource, readFile(t, invoice), "dry run must not write")
}

func TestRewriteTreeWithFileCache(t *testing.T) {
	eng, repo := testEngine(t)
	writeFile(t, repo, "src/modules/billing/ui/Invoice.tsx", invoiceSource)

	require.NoError(t, eng.EnableFileCache(16))

	stats, err := eng.RewriteTree(false)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rewrites)

	// Second pass skips the file entirely: unchanged since it was recorded.
	stats, err = eng.RewriteTree(false)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.FilesScanned)
}

func TestPlan(t *testing.T) {
	eng, _ := testEngine(t)

	plan := eng.Plan(models.ImportOccurrence{
		File:      "src/modules/billing/ui/Invoice.tsx",
		Specifier: "../../../db/models/Friend",
		Line:      2,
		Kind:      models.KindImport,
	})
	assert.True(t, plan.Accepted)
	assert.Equal(t, "@/db/models/Friend", plan.Proposed)

	plan = eng.Plan(models.ImportOccurrence{
		File:      "src/modules/billing/ui/Invoice.tsx",
		Specifier: "./helpers",
	})
	assert.False(t, plan.Accepted)

	plan = eng.Plan(models.ImportOccurrence{
		File:      "src/escape.ts",
		Specifier: "../../outside",
	})
	assert.False(t, plan.Accepted)
	assert.Empty(t, plan.Proposed)
}

func TestClassifyReport(t *testing.T) {
	eng, repo := testEngine(t)

	message := "'@/modules/interactions/services/foo' import is restricted from being used by a pattern. @/modules/*"
	otherMessage := "'@/db/models/Friend' import is restricted from being used by a pattern. @/db/*"
	reportJSON := fmt.Sprintf(`[
  {
    "filePath": %q,
    "messages": [
      {"ruleId": "no-restricted-imports", "line": 3, "message": %q},
      {"ruleId": "no-unused-vars", "line": 9, "message": "'x' is assigned a value but never used."}
    ]
  },
  {
    "filePath": %q,
    "messages": [
      {"ruleId": "no-restricted-imports", "line": 7, "message": %q},
      {"ruleId": "no-restricted-imports", "line": 12, "message": %q}
    ]
  }
]`,
		filepath.Join(repo, "src/modules/billing/Bar.ts"), message,
		filepath.Join(repo, "src/modules/interactions/internal/Bar.ts"), message,
		otherMessage,
	)
	reportPath := writeFile(t, repo, "eslint_report.json", reportJSON)

	violations, err := eng.ClassifyReport(reportPath)
	require.NoError(t, err)
	require.Len(t, violations, 3)

	assert.Equal(t, models.Violation{
		File:           "src/modules/billing/Bar.ts",
		Line:           3,
		Import:         "@/modules/interactions/services/foo",
		TargetModule:   "interactions",
		Classification: classify.CrossModule,
	}, violations[0])

	assert.Equal(t, classify.SameModule, violations[1].Classification)
	assert.Equal(t, "interactions", violations[1].TargetModule)
	assert.Equal(t, "src/modules/interactions/internal/Bar.ts", violations[1].File)

	assert.Equal(t, classify.Other, violations[2].Classification)
	assert.Equal(t, "@/db/models/Friend", violations[2].Import)
}

func TestClassifyReportMissing(t *testing.T) {
	eng, repo := testEngine(t)

	violations, err := eng.ClassifyReport(filepath.Join(repo, "eslint_report.json"))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestAuditTree(t *testing.T) {
	eng, repo := testEngine(t)

	writeFile(t, repo, "src/modules/billing/a.ts", `import { foo } from '@/modules/interactions/services/foo';
import { idx } from '@/modules/interactions';
import { Friend } from '../../../db/models/Friend';
import { svc } from './services/invoice';
`)

	audit, err := eng.AuditTree()
	require.NoError(t, err)

	assert.Equal(t, 1, audit.FilesScanned)

	require.Len(t, audit.Violations, 1)
	assert.Equal(t, "@/modules/interactions/services/foo", audit.Violations[0].Import)
	assert.Equal(t, "interactions", audit.Violations[0].TargetModule)
	assert.Equal(t, classify.CrossModule, audit.Violations[0].Classification)

	require.Len(t, audit.Candidates, 1)
	assert.Equal(t, "../../../db/models/Friend", audit.Candidates[0].Import)
	assert.Equal(t, "@/db/models/Friend", audit.Candidates[0].Proposed)
}

func TestAuditTreeDeepImportFromOutsideModules(t *testing.T) {
	eng, repo := testEngine(t)

	writeFile(t, repo, "app/routes/home.tsx",
		"import { foo } from '@/modules/interactions/services/foo';\n")

	audit, err := eng.AuditTree()
	require.NoError(t, err)

	require.Len(t, audit.Violations, 1)
	assert.Equal(t, classify.Other, audit.Violations[0].Classification)
	assert.Equal(t, "interactions", audit.Violations[0].TargetModule)
}
