package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deitrix/brickfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)
	def := engine.DefaultConfig()
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.QueueSize, cfg.QueueSize)
	assert.Equal(t, def.PointsPerRow, cfg.PointsPerRow)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvWidth:        "12",
		EnvQueueSize:    "3",
		EnvPointsPerRow: "40",
		EnvSeed:         "-9",
	}))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, 3, cfg.QueueSize)
	assert.Equal(t, 40, cfg.PointsPerRow)
	assert.Equal(t, int64(-9), cfg.Seed)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []map[string]string{
		{EnvWidth: "wide"},
		{EnvClockPeriod: "0"},
		{EnvSeed: "1.5"},
	}
	for _, env := range tests {
		_, err := FromEnv(lookupFrom(env))
		assert.Error(t, err, "%v", env)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.env")
	require.NoError(t, os.WriteFile(path, []byte("BRICKFALL_HEIGHT=24\nBRICKFALL_SEED=77\n"), 0o600))
	t.Setenv(EnvSeed, "5")
	t.Setenv(EnvHeight, "")
	os.Unsetenv(EnvHeight)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, int64(5), cfg.Seed, "the environment wins over the file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
