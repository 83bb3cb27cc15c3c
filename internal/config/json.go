package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/yameogo/gestock/internal/flagx"
	"github.com/yameogo/gestock/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can express the timeout either as a string
// like "15s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RetryCount     *int           `json:"retry_count"`
	PageSize       *int           `json:"page_size"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the JSON file given via
// the -c/-config flags. When no file is specified, nothing happens.
// Read or unmarshal errors panic; loading happens once at startup and a
// broken config file should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.RetryCount != nil {
		cfg.RetryCount = *jc.RetryCount
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
