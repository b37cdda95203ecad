package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prezlab/letter-generator/internal/config"
	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/odoo"
	"github.com/prezlab/letter-generator/internal/record"
	"github.com/prezlab/letter-generator/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating letters.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
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

	audit, err := openHistory(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if audit != nil {
		defer audit.Close()
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	svc := letters.NewService(record.NewFetcher(session), letters.NewGenerator(cfg.TemplateDir), audit)
	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		Letters: svc,
		JWT:     jwtConfig,
	})
	if err != nil {
		return err
	}
	return srv.Start()
}
