package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nutrilog/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Store != config.StorePostgres {
				return fmt.Errorf("migrate needs STORE=%s", config.StorePostgres)
			}

			logger, err := config.NewLogger(cfg.Environment, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := config.InitDB(cmd.Context(), cfg.DB, logger)
			if err != nil {
				return err
			}
			defer func() { _ = config.CloseDB(db) }()

			if err := config.Migrate(db); err != nil {
				return err
			}
			logger.Info("migration complete")
			return nil
		},
	}
}
