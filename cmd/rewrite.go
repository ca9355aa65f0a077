/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/modfence/modfence/core/engine"
	"github.com/modfence/modfence/core/logger"
	"github.com/spf13/cobra"
)

var dryRun bool

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite messy relative imports to their alias form",
	Long: `Walks the configured source roots and replaces relative import
specifiers that traverse up multiple levels, or that route through a legacy
root directory, with their canonical alias-qualified form. Shallow sibling
imports are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initRun()
		if err != nil {
			return err
		}
		logger.Debug("rewrite called")

		eng := engine.New(cfg)
		stats, err := eng.RewriteTree(dryRun)
		if err != nil {
			return fmt.Errorf("failed to rewrite tree: %w", err)
		}

		verb := "Rewrote"
		if dryRun {
			verb = "Would rewrite"
		}
		fmt.Printf("Scanned %d files. %s %d imports across %d files.\n",
			stats.FilesScanned, verb, stats.Rewrites, stats.FilesRewritten)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report rewrites without writing any file")
}
