package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonConfig(level string) Config {
	return Config{
		Level:       level,
		Format:      "json",
		ServiceName: "test-service",
	}
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(jsonConfig("info"), &buf)

	log.Info().Str("region", "South Korea").Msg("analysis started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "South Korea", entry["region"])
	assert.Equal(t, "analysis started", entry["message"])
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(jsonConfig("warn"), &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewWithOutput_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(jsonConfig("nonsense"), &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(jsonConfig("info"), &buf)

	log.WithSource("flighty").WithRegion("Schengen").Info().Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "flighty", entry["source"])
	assert.Equal(t, "Schengen", entry["region"])
}

func TestNop(t *testing.T) {
	// Must not panic and must produce nothing observable.
	log := Nop()
	log.Info().Msg("into the void")
	log.WithSource("flighty").Warn().Msg("still nothing")
}
