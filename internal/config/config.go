// Package config loads crumble settings from the environment.
// A .env file in the working directory is read first when present; variables
// already set in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable name, e.g. CRUMBLE_DB.
const Prefix = "CRUMBLE"

// Config holds every setting of the application.
type Config struct {
	// --- Storage ---
	// Empty means the default XDG data path.
	DB string `envconfig:"DB"`

	// --- Profile ---
	Profile string `envconfig:"PROFILE" default:"default"`

	// --- Logging ---
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// --- Calendar ---
	// Streak and ghost-mode days are counted in this zone.
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
}

// Load reads the optional env files (".env" when none are given) and then
// the environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	cfg.Profile = strings.TrimSpace(cfg.Profile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot check by type.
func (c *Config) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("%s_PROFILE must not be empty", Prefix)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", Prefix, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%s_LOG_FORMAT must be text or json, got %q", Prefix, c.LogFormat)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%s_TIMEZONE: %w", Prefix, err)
	}
	return nil
}

// Location returns the configured time zone, UTC if it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Level returns the configured log level, info if it cannot be parsed.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
