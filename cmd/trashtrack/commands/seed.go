package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trashtrack/trashtrack-api/internal/repository"
	"github.com/trashtrack/trashtrack-api/internal/service"
	"github.com/trashtrack/trashtrack-api/pkg/database"
)

var seedMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with the demo dataset",
	Long: `Delete every row and insert the demo dataset in one transaction. Refused when ENV=production.

Examples:
  trashtrack seed
  trashtrack seed --migrate   # apply the schema first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(parentOrBackground(cmd.Context()))
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "Apply the schema before seeding")
}

func runSeed(ctx context.Context) error {
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

	if seedMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	svc := service.NewSeedService(repository.NewSeedRepository(db), logr, cfg.IsProduction(), cfg.Auth.BcryptCost)
	if err := svc.Seed(ctx); err != nil {
		return err
	}
	logr.Info("database seeded")
	return nil
}
