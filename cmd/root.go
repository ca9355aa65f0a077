/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/modfence/modfence/core/config"
	"github.com/modfence/modfence/core/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modfence",
	Short: "Enforce and repair module boundaries in a source tree.",
	Long: `Modfence keeps a modular source tree honest. It classifies
restricted-import lint violations by the relationship between the importing
module and the imported one, audits the live tree for deep imports into
foreign modules, and rewrites messy relative import specifiers into their
canonical alias-qualified form.`,
}

var (
	cfgFile string
	logfile string
	verbose bool
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default modfence.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}

// initRun applies the persistent flags and loads the configuration. Every
// subcommand goes through here first.
func initRun() (*config.Config, error) {
	logger.SetVerbose(verbose)

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open logfile %s: %w", logfile, err)
		}
		logger.AddOutput(f)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
