/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/modfence/modfence/core/engine"
	"github.com/modfence/modfence/core/logger"
	"github.com/spf13/cobra"
)

var auditJSON bool

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Scan the live tree for boundary breaches and rewrite candidates",
	Long: `Scans every source file under the configured roots, without an
external lint report. Flags deep imports that reach into a foreign module's
internals and lists the relative imports the rewrite command would replace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initRun()
		if err != nil {
			return err
		}
		logger.Debug("audit called")

		eng := engine.New(cfg)
		audit, err := eng.AuditTree()
		if err != nil {
			return fmt.Errorf("failed to audit tree: %w", err)
		}

		if auditJSON {
			data, err := json.MarshalIndent(audit, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal audit: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Scanned %d files.\n", audit.FilesScanned)

		fmt.Printf("\n--- Deep Module Imports (%d) ---\n", len(audit.Violations))
		for _, v := range audit.Violations {
			fmt.Printf("%s:%d -> %s [%s]\n", v.File, v.Line, v.Import, v.Classification)
		}

		fmt.Printf("\n--- Rewrite Candidates (%d) ---\n", len(audit.Candidates))
		for _, c := range audit.Candidates {
			fmt.Printf("%s:%d %s -> %s\n", c.File, c.Line, c.Import, c.Proposed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Emit JSON instead of the grouped listing")
}
