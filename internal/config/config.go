// Package config loads menurandi's settings from the environment. An
// optional .env file is read first; real environment variables win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/hammamikhairi/menurandi/internal/logger"
	"github.com/hammamikhairi/menurandi/internal/unit"
)

// Config holds all application settings.
type Config struct {
	LogLevel          string  `env:"MENURANDI_LOG_LEVEL" envDefault:"normal" validate:"oneof=off quiet normal info verbose debug"`
	LogFile           string  `env:"MENURANDI_LOG_FILE" envDefault:"stderr"`
	DisplayConvention string  `env:"MENURANDI_DISPLAY_CONVENTION" envDefault:"metric" validate:"oneof=metric imperial"`
	DefaultPortion    float64 `env:"MENURANDI_DEFAULT_PORTION" envDefault:"1" validate:"gt=0"`
	ExportPath        string  `env:"MENURANDI_EXPORT_PATH"`
}

// Level returns the parsed log level.
func (c *Config) Level() logger.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}

// Convention returns the parsed display convention.
func (c *Config) Convention() unit.Convention {
	conv, err := unit.ParseConvention(c.DisplayConvention)
	if err != nil {
		return unit.Metric
	}
	return conv
}

// Load reads the given .env files (or ".env" when none is given), then the
// environment, and validates the result. Missing .env files are not an
// error.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its validation tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
