// Package config handles application configuration and environment loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the settings of a summary run. The report layout values
// exist because real exports vary by system version; defaults match the
// stock Dynamics 365 user license report.
type Config struct {
	Delimiter    string // separator for multi-role cells (default ",")
	DataStartRow int    // first sheet row of the report's data section (default 20)
	AliasColumn  int    // 1-based column of the Alias marker / user id (default 4)
	RoleColumn   int    // 1-based column of the Security Role marker / role cells (default 6)
	LogLevel     string // log level: debug, info, warn, error (default "info")
}

// Default returns a Config with the stock report layout.
func Default() *Config {
	return &Config{
		Delimiter:    ",",
		DataStartRow: 20,
		AliasColumn:  4,
		RoleColumn:   6,
		LogLevel:     "info",
	}
}

// ApplyEnv overrides settings from LICSUM_* environment variables.
// Unset or unparsable variables leave the current value in place.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LICSUM_DELIMITER"); v != "" {
		c.Delimiter = v
	}
	applyIntEnv("LICSUM_DATA_START_ROW", &c.DataStartRow)
	applyIntEnv("LICSUM_ALIAS_COL", &c.AliasColumn)
	applyIntEnv("LICSUM_ROLE_COL", &c.RoleColumn)
	if v := os.Getenv("LICSUM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("role delimiter must not be empty")
	}
	if c.DataStartRow < 1 {
		return fmt.Errorf("data start row must be >= 1, got %d", c.DataStartRow)
	}
	if c.AliasColumn < 1 || c.RoleColumn < 1 {
		return fmt.Errorf("alias and role columns must be >= 1, got %d and %d",
			c.AliasColumn, c.RoleColumn)
	}
	if c.AliasColumn == c.RoleColumn {
		return fmt.Errorf("alias and role columns must differ, both are %d", c.AliasColumn)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadFromEnv returns the default configuration with environment overrides
// applied and validated.
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyIntEnv(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*target = n
		}
	}
}
