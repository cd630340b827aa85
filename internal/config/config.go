// Package config reads the configuration of the backend from the
// environment. Values from a .env file in the working directory are
// loaded first and never override variables that are already set.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds the configuration of the backend.
type Config struct {
	APIURL    *url.URL // Base URL all links are built from
	DataDir   string   // Directory the database file is stored in
	Port      int
	GinMode   string
	LogFormat string // "human" or "json", empty selects by gin mode

	ForecastHorizonYears int

	// RefreshSchedule is the cron schedule of the forecast refresh.
	// The refresh is disabled when it is empty.
	RefreshSchedule string
}

var (
	ErrAPIURLMissing          = errors.New("environment variable API_URL must be set")
	ErrLogFormatInvalid       = errors.New("LOG_FORMAT must be 'human' or 'json'")
	ErrPortInvalid            = errors.New("PORT must be a number between 1 and 65535")
	ErrForecastHorizonInvalid = errors.New("FORECAST_HORIZON_YEARS must be a number between 1 and 100")
)

// Load reads the configuration.
func Load() (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	cfg := Config{
		DataDir:   getEnv("DATA_DIR", "data"),
		GinMode:   os.Getenv("GIN_MODE"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return Config{}, fmt.Errorf("parsing API_URL: %w", err)
	}
	cfg.APIURL = u

	if cfg.LogFormat != "" && cfg.LogFormat != "human" && cfg.LogFormat != "json" {
		return Config{}, ErrLogFormatInvalid
	}

	cfg.Port, err = getEnvAsInt("PORT", 8080)
	if err != nil || cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, ErrPortInvalid
	}

	cfg.ForecastHorizonYears, err = getEnvAsInt("FORECAST_HORIZON_YEARS", 10)
	if err != nil || cfg.ForecastHorizonYears < 1 || cfg.ForecastHorizonYears > 100 {
		return Config{}, ErrForecastHorizonInvalid
	}

	// An explicitly empty schedule disables the refresh
	schedule, ok := os.LookupEnv("FORECAST_REFRESH_SCHEDULE")
	if !ok {
		schedule = "@daily"
	}

	if schedule != "" {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return Config{}, fmt.Errorf("parsing FORECAST_REFRESH_SCHEDULE: %w", err)
		}
	}
	cfg.RefreshSchedule = schedule

	return cfg, nil
}

// Addr returns the address the server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(value)
}
