// Package config loads and validates the dashboard configuration.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Server struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Feed struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	SpreadsheetID  string        `mapstructure:"spreadsheet_id" validate:"required"`
	RecordsSheet   string        `mapstructure:"records_sheet" validate:"required"`
	HolidaysSheet  string        `mapstructure:"holidays_sheet" validate:"required"`
	NoveltiesSheet string        `mapstructure:"novelties_sheet" validate:"required"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server  Server        `mapstructure:"server"`
	Feed    Feed          `mapstructure:"feed"`
	Refresh time.Duration `mapstructure:"refresh_interval" validate:"required,min=1s"`
}

// Load reads the config file at path, applies defaults, and validates
// the result. Environment variables (TRAINING_ATLAS_*) override file
// values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("feed.base_url", "https://docs.google.com/spreadsheets/d")
	v.SetDefault("feed.records_sheet", "Base_WT25")
	v.SetDefault("feed.holidays_sheet", "DATA")
	v.SetDefault("feed.novelties_sheet", "Novedades")
	v.SetDefault("feed.timeout", 30*time.Second)
	v.SetDefault("refresh_interval", 2*time.Minute)

	v.SetEnvPrefix("TRAINING_ATLAS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
