package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	historyLimit      int
	historyConfigPath string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently generated letters",
	Long:  "List the most recent letter generations recorded in the audit database (requires DATABASE_URL).",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
	historyCmd.Flags().StringVar(&historyConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(historyConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("history requires DATABASE_URL (or database_url in the config file)")
	}

	store, err := openHistory(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No letters recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tEMPLOYEE\tTEMPLATE\tFILENAME")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.EmployeeName, e.TemplateKey, e.Filename)
	}
	return w.Flush()
}
