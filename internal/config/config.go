// Package config loads the application configuration: a YAML file under the
// user's home directory, overlaid with environment variables. A local .env
// file is honored for the chat API key.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ecobuddy/ecobuddy/internal/chat"
)

// Environment variable names.
const (
	EnvLogLevel  = "ECOBUDDY_LOG_LEVEL"
	EnvLogFormat = "ECOBUDDY_LOG_FORMAT"
	EnvLogFile   = "ECOBUDDY_LOG_FILE"
	EnvCacheDir  = "ECOBUDDY_CACHE_DIR"
	EnvChatModel = "ECOBUDDY_CHAT_MODEL"
	EnvChatURL   = "ECOBUDDY_CHAT_URL"
	EnvAPIKey    = "GROQ_API_KEY"
)

// configDirName is the directory under the user's home.
const configDirName = ".ecobuddy"

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
	File   string `yaml:"file"`   // optional additional log file
}

// ChatConfig points at the assistant endpoint. The API key only comes from
// the environment, never from the config file.
type ChatConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"-"`
}

// Config is the full application configuration.
type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	Chat     ChatConfig    `yaml:"chat"`
	CacheDir string        `yaml:"cache_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Chat: ChatConfig{
			BaseURL: chat.DefaultBaseURL,
			Model:   chat.DefaultModel,
		},
		CacheDir: filepath.Join(home, configDirName, "cache"),
	}
}

// DefaultPath returns the expected config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// Load reads the default config file (if present), a local .env file (best
// effort), and applies environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFrom(DefaultPath(), os.LookupEnv)
}

// LoadFrom reads the config file at path and applies overrides from the
// given environment lookup. A missing file is not an error; defaults apply.
// Exposed separately for testability.
func LoadFrom(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// No config file; defaults stand.
	default:
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnv(&cfg, lookupEnv)
	return cfg, nil
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok && v != "" {
		cfg.Logging.File = v
	}
	if v, ok := lookupEnv(EnvCacheDir); ok && v != "" {
		cfg.CacheDir = v
	}
	if v, ok := lookupEnv(EnvChatModel); ok && v != "" {
		cfg.Chat.Model = v
	}
	if v, ok := lookupEnv(EnvChatURL); ok && v != "" {
		cfg.Chat.BaseURL = v
	}
	if v, ok := lookupEnv(EnvAPIKey); ok && v != "" {
		cfg.Chat.APIKey = v
	}
}
