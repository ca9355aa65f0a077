/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/modfence/modfence/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Modfence",
	Long:  `Displays the version of Modfence.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Modfence %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
