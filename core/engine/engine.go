package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modfence/modfence/core/alias"
	"github.com/modfence/modfence/core/cache"
	"github.com/modfence/modfence/core/classify"
	"github.com/modfence/modfence/core/config"
	"github.com/modfence/modfence/core/logger"
	"github.com/modfence/modfence/core/models"
	"github.com/modfence/modfence/core/paths"
	"github.com/modfence/modfence/core/report"
	"github.com/modfence/modfence/core/rewrite"
	"github.com/modfence/modfence/core/scanner"
	"github.com/modfence/modfence/core/walker"
)

// Engine wires the alias table, rewrite decision engine, classifier and
// walker together and runs whole-tree passes. Everything it needs comes in
// through the config; there is no ambient working-directory lookup below
// this point.
type Engine struct {
	cfg        *config.Config
	table      *alias.Table
	decider    *rewrite.Engine
	classifier *classify.Classifier
	walker     *walker.SourceWalker
	fileCache  *cache.FileCache
}

func New(cfg *config.Config) *Engine {
	table := alias.NewTable(cfg.Aliases)
	return &Engine{
		cfg:        cfg,
		table:      table,
		decider:    rewrite.NewEngine(cfg.LegacyRoots),
		classifier: classify.New(table, cfg.ModulesRoot),
		walker:     walker.New(cfg.Roots, cfg.Extensions, cfg.Ignore),
	}
}

// EnableFileCache makes tree passes skip files whose size and mtime have not
// changed since they were last processed. Used by watch mode.
func (e *Engine) EnableFileCache(maxEntries int) error {
	fc, err := cache.New(maxEntries)
	if err != nil {
		return err
	}
	e.fileCache = fc
	return nil
}

type RewriteStats struct {
	FilesScanned   int
	FilesRewritten int
	Rewrites       int
}

// RewriteTree applies the alias rewrite pass to every source file under the
// configured roots. A file that cannot be processed is logged and skipped;
// it never aborts the run. With dryRun set, decisions are made and counted
// but nothing is written.
func (e *Engine) RewriteTree(dryRun bool) (*RewriteStats, error) {
	stats := &RewriteStats{}

	err := e.walker.Walk(e.cfg.RepoRoot, func(absPath, relPath string) error {
		if e.fileCache != nil && e.fileCache.Unchanged(absPath) {
			logger.Debug("Skipping unchanged file: %s", relPath)
			return nil
		}

		n, err := e.RewriteFile(absPath, relPath, dryRun)
		if err != nil {
			logger.Error("Skipping %s: %v", relPath, err)
			return nil
		}

		stats.FilesScanned++
		if n > 0 {
			stats.FilesRewritten++
			stats.Rewrites += n
		}
		if e.fileCache != nil && !dryRun {
			e.fileCache.Remember(absPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source roots: %w", err)
	}

	if e.fileCache != nil {
		e.fileCache.LogStats()
	}
	return stats, nil
}

// RewriteFile runs one read-decide-write pass over a single file and returns
// the number of accepted rewrites. The write replaces the whole file in one
// go, only when at least one rewrite was accepted.
func (e *Engine) RewriteFile(absPath, relPath string, dryRun bool) (int, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", relPath, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	content := string(data)
	updated, n := scanner.RewriteContent(relPath, content, func(occ models.ImportOccurrence) (string, bool) {
		plan := e.Plan(occ)
		return plan.Proposed, plan.Accepted
	})
	if n == 0 {
		return 0, nil
	}

	if dryRun {
		logger.Info("Would update %s (%d imports)", relPath, n)
		return n, nil
	}
	if err := os.WriteFile(absPath, []byte(updated), info.Mode()); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	logger.Info("Updated %s (%d imports)", relPath, n)
	return n, nil
}

// Plan resolves one occurrence to its alias-qualified form and applies the
// rewrite decision. Out-of-bounds and non-relative specifiers yield a
// rejected plan, leaving the original untouched.
func (e *Engine) Plan(occ models.ImportOccurrence) models.RewritePlan {
	plan := models.RewritePlan{Occurrence: occ}

	canonical, err := paths.Resolve(occ.File, occ.Specifier)
	if err != nil {
		if errors.Is(err, paths.ErrOutOfBounds) {
			logger.Debug("%s:%d import %q escapes the repository root, leaving untouched",
				occ.File, occ.Line, occ.Specifier)
		}
		return plan
	}

	proposed, ok := e.table.Apply(canonical)
	if !ok {
		return plan
	}
	plan.Proposed = proposed

	if !e.decider.Decide(occ.Specifier, proposed) {
		return plan
	}
	plan.Accepted = true
	logger.Debug("%s:%d %s -> %s", occ.File, occ.Line, occ.Specifier, proposed)
	return plan
}

// ClassifyReport ingests the external lint report and classifies every
// message carrying the configured restricted-imports rule. A missing report
// is reported once and yields zero violations.
func (e *Engine) ClassifyReport(path string) ([]models.Violation, error) {
	results, err := report.Load(path)
	if err != nil {
		if errors.Is(err, report.ErrMissing) {
			logger.Warn("Lint report %s not found, nothing to classify", path)
			return nil, nil
		}
		return nil, err
	}

	var violations []models.Violation
	for _, fileResult := range results {
		relPath := report.Relativize(fileResult.FilePath, e.cfg.RepoRoot)
		for _, msg := range fileResult.Messages {
			if msg.RuleID != e.cfg.Report.Rule {
				continue
			}
			spec, ok := report.Specifier(msg.Message)
			if !ok {
				logger.Debug("No specifier in message %q, skipping", msg.Message)
				continue
			}

			classification, targetModule := e.classifier.Classify(relPath, spec)
			violations = append(violations, models.Violation{
				File:           relPath,
				Line:           msg.Line,
				Import:         spec,
				TargetModule:   targetModule,
				Classification: classification,
			})
		}
	}

	logger.Debug("Classified %d violations from %s", len(violations), path)
	return violations, nil
}

// AuditTree scans the live tree without an external report. It flags deep
// imports into a foreign module's internals and lists the relative imports
// the rewrite pass would replace.
func (e *Engine) AuditTree() (*models.Audit, error) {
	audit := &models.Audit{}

	err := e.walker.Walk(e.cfg.RepoRoot, func(absPath, relPath string) error {
		data, err := os.ReadFile(absPath)
		if err != nil {
			logger.Error("Skipping %s: %v", relPath, err)
			return nil
		}
		audit.FilesScanned++

		for _, occ := range scanner.Scan(relPath, string(data)) {
			if v, ok := e.auditOccurrence(occ); ok {
				audit.Violations = append(audit.Violations, v)
			}
			if plan := e.Plan(occ); plan.Accepted {
				audit.Candidates = append(audit.Candidates, models.RewriteCandidate{
					File:     occ.File,
					Line:     occ.Line,
					Import:   occ.Specifier,
					Proposed: plan.Proposed,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source roots: %w", err)
	}
	return audit, nil
}

// auditOccurrence flags an occurrence that reaches past a foreign module's
// index into its internals. Same-module imports and imports of the module
// index itself are fine.
func (e *Engine) auditOccurrence(occ models.ImportOccurrence) (models.Violation, bool) {
	classification, targetModule := e.classifier.Classify(occ.File, occ.Specifier)
	if classification == classify.SameModule || targetModule == "" {
		return models.Violation{}, false
	}

	targetPath, ok := e.classifier.TargetPath(occ.File, occ.Specifier)
	if !ok || !e.isDeep(targetPath, targetModule) {
		return models.Violation{}, false
	}

	return models.Violation{
		File:           occ.File,
		Line:           occ.Line,
		Import:         occ.Specifier,
		TargetModule:   targetModule,
		Classification: classification,
	}, true
}

func (e *Engine) isDeep(targetPath, targetModule string) bool {
	prefix := e.cfg.ModulesRoot + "/" + targetModule + "/"
	return strings.HasPrefix(filepath.ToSlash(targetPath), prefix)
}
