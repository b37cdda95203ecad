package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prezlab/letter-generator/internal/config"
	"github.com/prezlab/letter-generator/internal/history"
	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/observability"
	"github.com/prezlab/letter-generator/internal/odoo"
	"github.com/prezlab/letter-generator/internal/record"
)

var (
	generateTemplate   string
	generateEmployeeID string
	generateRecordPath string
	generateCountry    string
	generateStartDate  string
	generateEndDate    string
	generateOutput     string
	generateConfigPath string
	generateVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a letter for an employee",
	Long: `Generate a letter by merging an employee record into a document template.

The record comes from the HR store (--employee-id) or an offline JSON file
(--record). Embassy letters additionally take --country, --start-date and
--end-date.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateTemplate, "template", "employment", "Template key (see 'lettergen templates')")
	generateCmd.Flags().StringVar(&generateEmployeeID, "employee-id", "", "Employee identification number")
	generateCmd.Flags().StringVar(&generateRecordPath, "record", "", "Path to an offline canonical record JSON file")
	generateCmd.Flags().StringVar(&generateCountry, "country", "", "Travel destination country (embassy letter)")
	generateCmd.Flags().StringVar(&generateStartDate, "start-date", "", "Travel start date, YYYY-MM-DD (embassy letter)")
	generateCmd.Flags().StringVar(&generateEndDate, "end-date", "", "Travel end date, YYYY-MM-DD (embassy letter)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (default: suggested filename in the working directory)")
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to a JSON config file")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print the resolved employee details")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	printer := observability.NewPrinter(os.Stdout)

	cfg, err := resolveConfig(generateConfigPath)
	if err != nil {
		return err
	}

	var rec *record.Canonical
	var fetcher *record.Fetcher
	if generateRecordPath != "" {
		rec, err = record.LoadFile(generateRecordPath)
		if err != nil {
			return err
		}
	} else {
		if generateEmployeeID == "" {
			return fmt.Errorf("either --employee-id or --record is required")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		session, err := odoo.Connect(odoo.Config{
			URL:      cfg.OdooURL,
			Database: cfg.OdooDB,
			Username: cfg.OdooUsername,
			Password: cfg.OdooPassword,
		})
		if err != nil {
			return err
		}
		defer session.Close()
		fetcher = record.NewFetcher(session)
	}

	audit, err := openHistory(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if audit != nil {
		defer audit.Close()
	}

	svc := letters.NewService(fetcher, letters.NewGenerator(cfg.TemplateDir), audit)
	result, err := svc.Generate(ctx, letters.Request{
		TemplateKey: generateTemplate,
		EmployeeID:  generateEmployeeID,
		Record:      rec,
		Extras: record.Extras{
			Country:   generateCountry,
			StartDate: generateStartDate,
			EndDate:   generateEndDate,
		},
	})
	if err != nil {
		return err
	}

	printer.PrintNotice(result.Notice)
	if generateVerbose {
		printer.PrintEmployeeDetails(result.Record)
	}

	output := generateOutput
	if output == "" {
		output = result.Filename
	}
	if err := os.WriteFile(output, result.Bytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", output, len(result.Bytes))
	return nil
}

// resolveConfig layers flag-file config over the environment.
func resolveConfig(path string) (config.Config, error) {
	cfg := *config.FromEnv()
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "templates"
	}
	return cfg, nil
}

func openHistory(ctx context.Context, databaseURL string) (*history.Store, error) {
	if databaseURL == "" {
		return nil, nil
	}
	store, err := history.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
