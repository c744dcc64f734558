package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds server and logging settings.
type Config struct {
	Addr        string `yaml:"addr" env:"TRUTHPUZZLE_ADDR"`
	LogLevel    string `yaml:"log_level" env:"TRUTHPUZZLE_LOG_LEVEL"`
	LogFormat   string `yaml:"log_format" env:"TRUTHPUZZLE_LOG_FORMAT"` // json or console
	Seed        int64  `yaml:"seed" env:"TRUTHPUZZLE_SEED"`             // 0 draws a random base seed
	MaxSessions int    `yaml:"max_sessions" env:"TRUTHPUZZLE_MAX_SESSIONS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "json",
		MaxSessions: 1024,
	}
}

// Load applies, in order: defaults, the YAML file at path (if path is not
// empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: addr is empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.MaxSessions < 1 {
		return fmt.Errorf("config: max_sessions must be positive, got %d", c.MaxSessions)
	}
	return nil
}
