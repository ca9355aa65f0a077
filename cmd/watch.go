/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/modfence/modfence/core/engine"
	"github.com/modfence/modfence/core/logger"
	"github.com/modfence/modfence/core/watcher"
	"github.com/spf13/cobra"
)

const watchCacheEntries = 1024

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rewrite imports continuously as files change",
	Long: `Runs the rewrite pass once, then watches the configured source
roots and re-runs it whenever files change. Unchanged files are skipped on
re-runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initRun()
		if err != nil {
			return err
		}
		logger.Debug("watch called")

		eng := engine.New(cfg)
		if err := eng.EnableFileCache(watchCacheEntries); err != nil {
			return fmt.Errorf("failed to enable file cache: %w", err)
		}

		runPass := func() error {
			stats, err := eng.RewriteTree(false)
			if err != nil {
				return err
			}
			if stats.Rewrites > 0 {
				logger.Info("Rewrote %d imports across %d files", stats.Rewrites, stats.FilesRewritten)
			}
			return nil
		}

		if err := runPass(); err != nil {
			return fmt.Errorf("initial rewrite pass failed: %w", err)
		}

		roots := make([]string, 0, len(cfg.Roots))
		for _, root := range cfg.Roots {
			roots = append(roots, filepath.Join(cfg.RepoRoot, root))
		}

		w, err := watcher.New(roots, cfg.Ignore, runPass)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer w.Close()

		logger.Info("Watching %d roots for changes...", len(roots))
		return w.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
