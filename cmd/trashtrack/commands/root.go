package commands

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/handler"
	"github.com/trashtrack/trashtrack-api/pkg/config"
	"github.com/trashtrack/trashtrack-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "trashtrack",
	Short:         "TrashTrack municipal waste-management API",
	Long:          `TrashTrack serves the REST API for citizen reports, pickup schedules and educational content.`,
	Version:       handler.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg, logr, nil
}
