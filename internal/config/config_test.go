package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)
	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.RetryCount)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-u", "https://api.example.com/v1", "-t", "30", "-l", "debug")
	cfg := LoadConfig()

	assert.Equal(t, "https://api.example.com/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("GESTOCK_API_URL", "http://env.example.com/api")
	t.Setenv("GESTOCK_RETRY_COUNT", "5")
	t.Setenv("GESTOCK_PAGE_SIZE", "50")

	cfg := LoadConfig()

	assert.Equal(t, "http://env.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5, cfg.RetryCount)
	assert.Equal(t, 50, cfg.PageSize)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	payload := `{"base_url":"http://json.example.com/api","request_timeout":"45s","retry_count":1,"page_size":10,"log_level":"warn"}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	resetArgs(t, "-c", path)
	cfg := LoadConfig()

	assert.Equal(t, "http://json.example.com/api", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.RetryCount)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://json.example.com/api"}`), 0o600))

	resetArgs(t, "-c", path, "-u", "http://flag.example.com/api")
	cfg := LoadConfig()

	assert.Equal(t, "http://flag.example.com/api", cfg.BaseURL)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	resetArgs(t, "-c", "/does/not/exist.json")
	assert.Panics(t, func() { LoadConfig() })
}
