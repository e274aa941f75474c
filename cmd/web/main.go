package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/training-atlas/pkg/server"
	"github.com/de-tools/training-atlas/pkg/services/config"
	"github.com/de-tools/training-atlas/pkg/services/snapshot"
	"github.com/de-tools/training-atlas/pkg/store/sheets"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Training Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	feed := sheets.NewClient(sheets.Settings{
		BaseURL:        cfg.Feed.BaseURL,
		SpreadsheetID:  cfg.Feed.SpreadsheetID,
		RecordsSheet:   cfg.Feed.RecordsSheet,
		HolidaysSheet:  cfg.Feed.HolidaysSheet,
		NoveltiesSheet: cfg.Feed.NoveltiesSheet,
		Timeout:        cfg.Feed.Timeout,
	})

	store := snapshot.NewStore()
	refresher := snapshot.NewRefresher(feed, store)

	go func() {
		if err := refresher.Run(ctx, cfg.Refresh); err != nil {
			logger.Error().Err(err).Msg("snapshot refresher stopped")
		}
	}()

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Snapshots: store,
			Refresher: refresher,
		},
	})

	return webAPI.Start()
}
