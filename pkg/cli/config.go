package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"licsum/internal/config"
)

// UserConfig represents ~/.licsum/config.yaml. All fields are optional;
// zero values leave the corresponding setting untouched.
type UserConfig struct {
	Delimiter    string `yaml:"delimiter,omitempty"`
	DataStartRow int    `yaml:"data-start-row,omitempty"`
	AliasColumn  int    `yaml:"alias-column,omitempty"`
	RoleColumn   int    `yaml:"role-column,omitempty"`
	LogLevel     string `yaml:"log-level,omitempty"`
}

// applyTo overlays the set fields onto cfg.
func (u *UserConfig) applyTo(cfg *config.Config) {
	if u.Delimiter != "" {
		cfg.Delimiter = u.Delimiter
	}
	if u.DataStartRow > 0 {
		cfg.DataStartRow = u.DataStartRow
	}
	if u.AliasColumn > 0 {
		cfg.AliasColumn = u.AliasColumn
	}
	if u.RoleColumn > 0 {
		cfg.RoleColumn = u.RoleColumn
	}
	if u.LogLevel != "" {
		cfg.LogLevel = u.LogLevel
	}
}

// ConfigDir returns the path to ~/.licsum/.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".licsum")
}

// ConfigPath returns the path to ~/.licsum/config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadUserConfig reads ~/.licsum/config.yaml.
func LoadUserConfig() (*UserConfig, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// SaveUserConfig writes ~/.licsum/config.yaml.
func SaveUserConfig(cfg *UserConfig) error {
	if err := os.MkdirAll(ConfigDir(), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o600)
}
