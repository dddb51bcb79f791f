package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate-ledger/internal/app"
	"estate-ledger/internal/config"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "estate-ledger",
		Short:         "Soft-delete item store and real-estate ownership ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create missing tables and indexes, then exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return app.Migrate(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Create an item, soft-delete the active view and print the deleted view",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return app.Demo(cmd.Context(), cfg, cmd.OutOrStdout())
			},
		},
	)

	return root
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setLogger(cfg.LogLevel)
	return cfg, nil
}
