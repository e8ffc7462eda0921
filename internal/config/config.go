// Package config loads doccraft defaults from the environment and an optional
// .env file.
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the values flags fall back to.
type Config struct {
	Mix       []string `env:"DOCCRAFT_MIX" envSeparator:"," envDefault:"txt,pdf,docx"`
	Seed      uint64   `env:"DOCCRAFT_SEED"`
	NamesFile string   `env:"DOCCRAFT_NAMES_FILE"`
	LogLevel  string   `env:"DOCCRAFT_LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"DOCCRAFT_LOG_FORMAT" envDefault:"text"`
}

// Load reads a .env file from the working directory when present, then parses
// the process environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LoadFrom parses cfg from an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
