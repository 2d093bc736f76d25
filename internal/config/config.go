package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/meenmo/datecalc/calendar"
	"github.com/meenmo/datecalc/daycount"
	"github.com/meenmo/datecalc/imm"
)

// Config holds CLI defaults and logging settings.
type Config struct {
	Env string // development, production

	// Logging
	LogLevel  string
	LogFormat string

	// Defaults for commands that take no explicit flag.
	Basis     string
	Calendar  string
	IMMPeriod string
	Precision int
}

// Load reads configuration from the environment, after loading .env when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	precision, err := getEnvAsInt("DATECALC_PRECISION", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:       getEnv("DATECALC_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
		Basis:     getEnv("DATECALC_BASIS", daycount.Act365.String()),
		Calendar:  getEnv("DATECALC_CALENDAR", string(calendar.WEEKEND)),
		IMMPeriod: getEnv("DATECALC_IMM_PERIOD", imm.Quarterly.String()),
		Precision: precision,
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("DATECALC_ENV must be one of: development, production")
	}
	if _, err := daycount.Resolve(c.Basis); err != nil {
		return fmt.Errorf("DATECALC_BASIS: %w", err)
	}
	if _, err := calendar.ParseCalendarID(c.Calendar); err != nil {
		return fmt.Errorf("DATECALC_CALENDAR: %w", err)
	}
	if _, err := imm.ParsePeriod(c.IMMPeriod); err != nil {
		return fmt.Errorf("DATECALC_IMM_PERIOD: %w", err)
	}
	if c.Precision < 0 || c.Precision > daycount.YearFractionPrecision {
		return fmt.Errorf("DATECALC_PRECISION must be between 0 and %d", daycount.YearFractionPrecision)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return value, nil
}
