package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, zerolog.InfoLevel)

	log.Info(context.Background(), "request finished", "method", "GET", "status", 200)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "request finished", rec["message"])
	assert.Equal(t, "GET", rec["method"])
	assert.Equal(t, float64(200), rec["status"])
}

func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, zerolog.WarnLevel)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden too")
	assert.Zero(t, buf.Len())

	log.Warn(context.Background(), "visible")
	assert.NotZero(t, buf.Len())
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, zerolog.InfoLevel)

	child := log.With("component", "api")
	child.Info(context.Background(), "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "api", rec["component"])
}

func TestPairsToMap_OddArgs(t *testing.T) {
	m := pairsToMap([]any{"a", 1, "dangling"})
	assert.Equal(t, 1, m["a"])
	v, ok := m["dangling"]
	assert.True(t, ok)
	assert.Nil(t, v)
}
