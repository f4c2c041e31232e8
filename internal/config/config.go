// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// Config is the full set of runtime settings.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`

	Stats Stats
	Admin Admin
	OTel  OTel
}

// Stats configures the opt-in visit statistics store.
type Stats struct {
	DBPath    string        `env:"PORTFOLIO_STATS_DB"`
	Retention time.Duration `env:"PORTFOLIO_STATS_RETENTION" envDefault:"8760h"`
}

// Admin holds the credentials for the statistics surface.
type Admin struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// OTel configures trace export.
type OTel struct {
	Endpoint string `env:"PORTFOLIO_OTEL_ENDPOINT"`
	Enabled  bool   `env:"PORTFOLIO_OTEL_ENABLED" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Debug reports whether gin runs in debug mode.
func (c Config) Debug() bool {
	return c.GinMode == gin.DebugMode
}

// StatsEnabled reports whether visit statistics are recorded.
func (c Config) StatsEnabled() bool {
	return strings.TrimSpace(c.Stats.DBPath) != ""
}

// Validate checks cross-field constraints. Development credentials are filled
// in only in debug mode.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of %s, %s or %s (got %q)", gin.DebugMode, gin.ReleaseMode, gin.TestMode, c.GinMode)
	}
	if c.Stats.Retention < 0 {
		return fmt.Errorf("PORTFOLIO_STATS_RETENTION must be >= 0 (got %s)", c.Stats.Retention)
	}
	if !c.StatsEnabled() {
		return nil
	}
	if c.Admin.Username == "" && c.Admin.Password == "" && c.Debug() {
		c.Admin.Username = "admin"
		c.Admin.Password = "admin123"
		return nil
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD are required when PORTFOLIO_STATS_DB is set")
	}
	return nil
}
