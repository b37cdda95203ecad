package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/observability"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available letter templates",
	Run: func(_ *cobra.Command, _ []string) {
		observability.NewPrinter(os.Stdout).PrintTemplates(letters.Templates())
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
