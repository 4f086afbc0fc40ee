package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licsum/internal/config"
)

func TestUserConfig_ApplyTo(t *testing.T) {
	t.Run("set_fields_override", func(t *testing.T) {
		cfg := config.Default()
		uc := &UserConfig{Delimiter: ";", DataStartRow: 2, LogLevel: "debug"}

		uc.applyTo(cfg)

		assert.Equal(t, ";", cfg.Delimiter)
		assert.Equal(t, 2, cfg.DataStartRow)
		assert.Equal(t, "debug", cfg.LogLevel)
		// Unset fields keep their defaults.
		assert.Equal(t, 4, cfg.AliasColumn)
		assert.Equal(t, 6, cfg.RoleColumn)
	})

	t.Run("zero_config_is_a_noop", func(t *testing.T) {
		cfg := config.Default()
		(&UserConfig{}).applyTo(cfg)
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestLoadSaveUserConfig(t *testing.T) {
	// Redirect the home directory so the test never touches ~/.licsum.
	t.Setenv("HOME", t.TempDir())

	_, err := LoadUserConfig()
	require.Error(t, err, "missing config file is an error for the caller to ignore")

	saved := &UserConfig{Delimiter: ";", RoleColumn: 3}
	require.NoError(t, SaveUserConfig(saved))

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	info, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
