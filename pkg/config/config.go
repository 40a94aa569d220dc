package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

// ErrMissingAPIKey is returned by Validate when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type Config struct {
	Port          string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration
	StaticDir     string
	LogLevel      string
	LogFormat     string
}

// fileConfig mirrors Config for the optional YAML file. Empty fields keep defaults.
type fileConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
	Gemini    struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"gemini"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func defaults() Config {
	return Config{
		Port:          "3000",
		GeminiModel:   "gemini-2.0-flash",
		GeminiBaseURL: "https://generativelanguage.googleapis.com/v1beta",
		GeminiTimeout: 60 * time.Second,
		StaticDir:     "web/public",
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// Load reads configuration in three layers: defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables, optionally from a .env file.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)
	cfg.GeminiBaseURL = strings.TrimRight(getEnv("GEMINI_BASE_URL", cfg.GeminiBaseURL), "/")
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	timeout, err := getEnvDuration("GEMINI_TIMEOUT", cfg.GeminiTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.GeminiTimeout = timeout
	return cfg, nil
}

// Validate checks required settings. The server refuses to start without a key.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.GeminiTimeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive, got %s", c.GeminiTimeout)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	setIfNotEmpty(&c.Port, fc.Port)
	setIfNotEmpty(&c.StaticDir, fc.StaticDir)
	setIfNotEmpty(&c.GeminiAPIKey, fc.Gemini.APIKey)
	setIfNotEmpty(&c.GeminiModel, fc.Gemini.Model)
	setIfNotEmpty(&c.GeminiBaseURL, fc.Gemini.BaseURL)
	setIfNotEmpty(&c.LogLevel, fc.Log.Level)
	setIfNotEmpty(&c.LogFormat, fc.Log.Format)
	if fc.Gemini.Timeout != "" {
		d, err := time.ParseDuration(fc.Gemini.Timeout)
		if err != nil {
			return fmt.Errorf("config file gemini.timeout: %w", err)
		}
		c.GeminiTimeout = d
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
