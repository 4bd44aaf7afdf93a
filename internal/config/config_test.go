package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 600*time.Millisecond, cfg.TurnDelay)
	assert.Equal(t, 2, cfg.StartCoins)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Screen)
	assert.False(t, cfg.Telemetry().Enabled())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DICEBOARD_LOG_LEVEL", "debug")
	t.Setenv("DICEBOARD_TURN_DELAY", "0s")
	t.Setenv("DICEBOARD_START_COINS", "5")
	t.Setenv("DICEBOARD_COLOR", "false")
	t.Setenv("DICEBOARD_SCREEN", "true")
	t.Setenv("HONEYCOMB_DICEBOARD_API_KEY", "secret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, time.Duration(0), cfg.TurnDelay)
	assert.Equal(t, 5, cfg.StartCoins)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Screen)
	assert.True(t, cfg.Telemetry().Enabled())
	assert.Equal(t, "diceboard", cfg.Telemetry().Dataset)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative coins", "DICEBOARD_START_COINS", "-1"},
		{"zero coins", "DICEBOARD_START_COINS", "0"},
		{"not a number", "DICEBOARD_START_COINS", "two"},
		{"negative delay", "DICEBOARD_TURN_DELAY", "-1s"},
		{"unknown level", "DICEBOARD_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DICEBOARD_START_COINS=7\n"), 0o600))
	// godotenv does not override variables that are already set; register
	// cleanup for the one it will set.
	t.Setenv("DICEBOARD_START_COINS", "")
	require.NoError(t, os.Unsetenv("DICEBOARD_START_COINS"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.StartCoins)
}

func TestLoadMissingDotEnv(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.StartCoins)
}
