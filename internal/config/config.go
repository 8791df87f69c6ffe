package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort int    `env:"FINAPI_HTTP_PORT"`
	LogLevel string `env:"FINAPI_LOG_LEVEL"`

	// StatementTimezone is the IANA zone name used when truncating operation
	// timestamps to calendar days for statement date filtering.
	StatementTimezone string `env:"FINAPI_STATEMENT_TIMEZONE"`
}

func LoadConfig() (*Config, error) {
	// A .env file is optional; real env vars always win.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.HTTPPort = getEnvAsInt("FINAPI_HTTP_PORT", 3333)
	cfg.LogLevel = getEnvOrDefault("FINAPI_LOG_LEVEL", "info")
	cfg.StatementTimezone = getEnvOrDefault("FINAPI_STATEMENT_TIMEZONE", "UTC")

	if _, err := time.LoadLocation(cfg.StatementTimezone); err != nil {
		return nil, fmt.Errorf("invalid FINAPI_STATEMENT_TIMEZONE %q: %w", cfg.StatementTimezone, err)
	}

	return cfg, nil
}

// StatementLocation resolves the configured statement time zone.
func (c *Config) StatementLocation() *time.Location {
	loc, err := time.LoadLocation(c.StatementTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvOrDefault(key, strconv.Itoa(defaultValue))
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
