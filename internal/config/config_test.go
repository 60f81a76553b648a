package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobuddy/ecobuddy/internal/chat"
	"github.com/ecobuddy/ecobuddy/internal/config"
)

func noEnv(string) (string, bool) { return "", false }

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, chat.DefaultBaseURL, cfg.Chat.BaseURL)
	assert.Equal(t, chat.DefaultModel, cfg.Chat.Model)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
cache_dir: /tmp/eco-test
chat:
  model: llama-3.3-70b-versatile
`), 0600))

	cfg, err := config.LoadFrom(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/eco-test", cfg.CacheDir)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Chat.Model)
	// Unset fields keep their defaults.
	assert.Equal(t, chat.DefaultBaseURL, cfg.Chat.BaseURL)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	env := map[string]string{
		config.EnvLogLevel: "warn",
		config.EnvCacheDir: "/tmp/eco-env",
		config.EnvAPIKey:   "secret",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"), lookup)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/eco-env", cfg.CacheDir)
	assert.Equal(t, "secret", cfg.Chat.APIKey)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0600))

	_, err := config.LoadFrom(path, noEnv)
	require.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		logger, closeFn, err := config.InitLogger(config.LoggingConfig{Level: "debug", Format: "console"})
		require.NoError(t, err)
		defer func() { _ = closeFn() }()
		assert.Equal(t, "debug", logger.GetLevel().String())
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		logger, closeFn, err := config.InitLogger(config.LoggingConfig{Level: "loud"})
		require.NoError(t, err)
		defer func() { _ = closeFn() }()
		assert.Equal(t, "info", logger.GetLevel().String())
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "eco.log")
		logger, closeFn, err := config.InitLogger(config.LoggingConfig{Level: "info", File: path})
		require.NoError(t, err)

		logger.Info().Msg("hello")
		require.NoError(t, closeFn())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})
}
