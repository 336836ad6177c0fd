package cronexpr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cronexpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultMaxSearchYears, cfg.MaxSearchYears)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "max_search_years: 12\noutput: yaml\nverbose: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{MaxSearchYears: 12, Output: "yaml", Verbose: true}, cfg)

	s := New(cfg.Options()...)
	assert.Equal(t, 12, s.MaxSearchYears())
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := writeConfig(t, "output: array\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxSearchYears, cfg.MaxSearchYears)
	assert.Equal(t, "array", cfg.Output)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("CRONEXPR_MAX_SEARCH_YEARS", "20")
	t.Setenv("CRONEXPR_VERBOSE", "true")
	path := writeConfig(t, "max_search_years: 12\noutput: yaml\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.MaxSearchYears)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "max_search_yrs: 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "max_search_years: [1\n"))
		assert.Error(t, err)
	})

	t.Run("invalid horizon", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "max_search_years: 0\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_search_years")
	})

	t.Run("bad environment value", func(t *testing.T) {
		t.Setenv("CRONEXPR_MAX_SEARCH_YEARS", "many")
		_, err := LoadConfig("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, (&Config{MaxSearchYears: -3}).Validate())
}
