package main

import (
	"fmt"
	"os"

	"github.com/de-tools/training-atlas/pkg/runtime/terminal"
	"github.com/de-tools/training-atlas/pkg/services/config"
	"github.com/de-tools/training-atlas/pkg/store/sheets"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional for the CLI; env vars may come from the shell.
	_ = godotenv.Load()

	cfgPath := os.Getenv("TRAINING_ATLAS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Feed: sheets.NewClient(sheets.Settings{
			BaseURL:        cfg.Feed.BaseURL,
			SpreadsheetID:  cfg.Feed.SpreadsheetID,
			RecordsSheet:   cfg.Feed.RecordsSheet,
			HolidaysSheet:  cfg.Feed.HolidaysSheet,
			NoveltiesSheet: cfg.Feed.NoveltiesSheet,
			Timeout:        cfg.Feed.Timeout,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
