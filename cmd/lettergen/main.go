// Package main provides the entry point for the letter generator CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lettergen",
	Short: "Formal letter generator",
	Long:  "lettergen merges employee records from the HR store into formal letter templates (employment, embassy and experience letters) while preserving template formatting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
