// Package config loads and validates server configuration from environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds the RAIRE HTTP server's runtime settings.
type Config struct {
	Port                    int
	StaticDir               string
	LogLevel                string
	DefaultTimeLimitSeconds float64
}

// Load reads configuration from environment variables with sensible
// defaults. Only malformed values are rejected; missing variables fall back
// to their default.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		StaticDir: envStr("RAIRE_STATIC_DIR", "./static"),
		LogLevel:  envStr("RAIRE_LOG_LEVEL", "info"),
	}

	cfg.Port, errs = collectInt(errs, "PORT", 8080)
	cfg.DefaultTimeLimitSeconds, errs = collectFloat(errs, "RAIRE_DEFAULT_TIME_LIMIT_SECONDS", 5)

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: invalid environment variables: %w", errors.Join(errs...))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the loaded configuration is sane.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, errors.New("config: PORT must be between 1 and 65535"))
	}
	if c.DefaultTimeLimitSeconds <= 0 {
		errs = append(errs, errors.New("config: RAIRE_DEFAULT_TIME_LIMIT_SECONDS must be positive"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: RAIRE_LOG_LEVEL %q is not one of debug/info/warn/error", c.LogLevel))
	}
	return errors.Join(errs...)
}

func collectInt(errs []error, key string, fallback int) (int, []error) {
	v, err := envInt(key, fallback)
	if err != nil {
		errs = append(errs, err)
	}
	return v, errs
}

func collectFloat(errs []error, key string, fallback float64) (float64, []error) {
	v, err := envFloat(key, fallback)
	if err != nil {
		errs = append(errs, err)
	}
	return v, errs
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid integer", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a valid number", key, v)
	}
	return f, nil
}
