package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trashtrack/trashtrack-api/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database schema",
	Long: `Create the TrashTrack tables when they do not exist. Safe to run repeatedly.

Examples:
  trashtrack migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(parentOrBackground(cmd.Context()))
	},
}

func runMigrate(ctx context.Context) error {
	cfg, logr, err := bootstrap()
	if err != nil {
		return err
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logr.Info("schema applied")
	return nil
}
