// Package config loads formkit settings from defaults, an optional YAML
// file and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/formkit/pkg/errx"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding the YAML file path.
const EnvConfigFile = "FORMKIT_CONFIG"

var (
	ErrRegistry = errx.NewRegistry("CONFIG")

	CodeInvalid    = ErrRegistry.Register("INVALID", errx.TypeValidation, "invalid configuration")
	CodeUnreadable = ErrRegistry.Register("UNREADABLE", errx.TypeInternal, "configuration file could not be read")
)

// Config is the root configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Async      AsyncConfig      `yaml:"async"`
	Validation ValidationConfig `yaml:"validation"`
}

// LogConfig mirrors the logx settings that can come from a file.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
		},
		Async:      defaultAsyncConfig(),
		Validation: defaultValidationConfig(),
	}
}

// Load builds the configuration. The file named by FORMKIT_CONFIG is
// optional; when set it must exist and parse.
func Load() (*Config, error) {
	cfg := Default()

	if path := getEnv(EnvConfigFile, ""); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
	cfg.Async = loadAsyncConfig(cfg.Async)
	cfg.Validation = loadValidationConfig(cfg.Validation)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ErrRegistry.NewWithCause(CodeUnreadable, err).WithDetail("path", path)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return ErrRegistry.NewWithCause(CodeInvalid, err).WithDetail("path", path)
	}
	return nil
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if err := c.Async.validate(); err != nil {
		return err
	}
	return c.Validation.validate()
}

func invalid(field string, format string, args ...interface{}) error {
	return ErrRegistry.NewWithMessage(CodeInvalid, fmt.Sprintf(format, args...)).
		WithDetail("field", field)
}

// ---------------------------------------------------------------------------
// Environment helpers
// ---------------------------------------------------------------------------

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvStringSlice(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
