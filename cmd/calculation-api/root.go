package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "calculation-api",
	Short: "Calculation model API service",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
}
