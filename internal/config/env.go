package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment. A
// local .env file, when present, is loaded first without overriding
// variables already set in the environment.
//
// Recognized variables:
//
//	GESTOCK_API_URL      base URL of the backend API
//	GESTOCK_TIMEOUT      request timeout, e.g. "15s"
//	GESTOCK_RETRY_COUNT  max list-fetch retries
//	GESTOCK_PAGE_SIZE    default page size
//	GESTOCK_LOG_LEVEL    zerolog level name
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GESTOCK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GESTOCK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("GESTOCK_RETRY_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RetryCount = n
		}
	}
	if v := os.Getenv("GESTOCK_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("GESTOCK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
