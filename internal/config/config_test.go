package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delve/internal/procgen"
)

var allKeys = []string{
	"DELVE_SEED", "DELVE_WIDTH", "DELVE_HEIGHT", "DELVE_MAX_ROOMS",
	"DELVE_ROOM_MIN", "DELVE_ROOM_MAX", "DELVE_FOV_RADIUS", "DELVE_MAX_DEPTH",
	"LOG_LEVEL", "LOG_FORMAT", "DELVE_TELEMETRY",
}

// clearEnv blanks every variable the loader reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.HasSeed)
	assert.Equal(t, procgen.DefaultConfig(), cfg.Generation)
	assert.Equal(t, DefaultFOVRadius, cfg.FOVRadius)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DELVE_SEED", "5509")
	t.Setenv("DELVE_WIDTH", "60")
	t.Setenv("DELVE_HEIGHT", "30")
	t.Setenv("DELVE_ROOM_MAX", "8")
	t.Setenv("DELVE_FOV_RADIUS", "5")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DELVE_TELEMETRY", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.HasSeed)
	assert.EqualValues(t, 5509, cfg.Seed)
	assert.Equal(t, 60, cfg.Generation.Width)
	assert.Equal(t, 30, cfg.Generation.Height)
	assert.Equal(t, 8, cfg.Generation.RoomMaxSize)
	assert.Equal(t, 5, cfg.FOVRadius)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Telemetry)
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	tests := map[string]string{
		"DELVE_SEED":      "abc",
		"DELVE_WIDTH":     "wide",
		"DELVE_TELEMETRY": "maybe",
		"DELVE_MAX_DEPTH": "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFromEnvValidatesGeneration(t *testing.T) {
	clearEnv(t)
	t.Setenv("DELVE_ROOM_MAX", "200")

	_, err := FromEnv()
	assert.ErrorIs(t, err, procgen.ErrInvalidConfig)
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even
	// to the empty string, so unset the one under test.
	require.NoError(t, os.Unsetenv("DELVE_SEED"))
	t.Cleanup(func() { os.Unsetenv("DELVE_SEED") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DELVE_SEED=77\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.HasSeed)
	assert.EqualValues(t, 77, cfg.Seed)
}

func TestLoadToleratesMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
