package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Analysis.File)
	assert.Empty(t, cfg.Analysis.Preset)
	assert.False(t, cfg.Analysis.Strict)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("FLIGHTY_EXPORT", "/data/flights.csv")
	t.Setenv("ANALYZER_PRESET", "korea")
	t.Setenv("ANALYZER_STRICT", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/data/flights.csv", cfg.Analysis.File)
	assert.Equal(t, "korea", cfg.Analysis.Preset)
	assert.True(t, cfg.Analysis.Strict)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{
			name:    "bad log level",
			key:     "LOG_LEVEL",
			value:   "verbose",
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad log format",
			key:     "LOG_FORMAT",
			value:   "xml",
			wantErr: "LOG_FORMAT",
		},
		{
			name:    "unknown preset",
			key:     "ANALYZER_PRESET",
			value:   "atlantis",
			wantErr: "ANALYZER_PRESET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
