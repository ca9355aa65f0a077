/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/modfence/modfence/core/classify"
	"github.com/modfence/modfence/core/engine"
	"github.com/modfence/modfence/core/logger"
	"github.com/modfence/modfence/core/models"
	"github.com/spf13/cobra"
)

var (
	reportPath   string
	classifyJSON bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify restricted-import lint violations by module relationship",
	Long: `Reads an ESLint JSON report and buckets every restricted-import
violation: cross-module (a genuine boundary breach), same-module (the rule
tripping on a module's own internals), or other (non-module imports).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initRun()
		if err != nil {
			return err
		}
		logger.Debug("classify called")

		path := reportPath
		if path == "" {
			path = cfg.Report.Path
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.RepoRoot, path)
		}

		eng := engine.New(cfg)
		violations, err := eng.ClassifyReport(path)
		if err != nil {
			return fmt.Errorf("failed to classify report: %w", err)
		}

		if classifyJSON {
			return printViolationsJSON(violations)
		}
		printViolations(cfg.Report.Rule, violations)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&reportPath, "report", "", "Lint report path (default from config)")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Emit JSON instead of the grouped listing")
}

func printViolations(rule string, violations []models.Violation) {
	fmt.Printf("Total '%s' violations: %d\n", rule, len(violations))

	grouped := models.GroupByClassification(violations)
	order := []struct {
		class classify.Classification
		label string
	}{
		{classify.CrossModule, "Cross-Module"},
		{classify.SameModule, "Same-Module"},
		{classify.Other, "Other (e.g. root->module)"},
	}

	for _, group := range order {
		bucket := grouped[group.class]
		fmt.Printf("\n--- %s Violations (%d) ---\n", group.label, len(bucket))
		for _, v := range bucket {
			fmt.Printf("%s:%d -> %s\n", v.File, v.Line, v.Import)
		}
	}
}

func printViolationsJSON(violations []models.Violation) error {
	grouped := models.GroupByClassification(violations)
	out := map[string][]models.Violation{}
	for class, bucket := range grouped {
		out[class.String()] = bucket
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal violations: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
