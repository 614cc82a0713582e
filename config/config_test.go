package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithNoOverrides(t *testing.T) {
	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.DelayMS)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.DebugAssertions)
}

func TestLoadAppliesTOMLThenFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.toml")
	require.NoError(t, os.WriteFile(path, []byte("pruning_period = 7\n"), 0o644))

	speed := int64(25)
	seed := int64(99)
	debug := true
	cfg, err := Load(Overrides{
		ConfigPath:      path,
		Speed:           &speed,
		Seed:            &seed,
		DebugAssertions: &debug,
		LogFile:         "run.log",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Params.PruningPeriod)
	assert.Equal(t, int64(25), cfg.DelayMS)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.DebugAssertions)
	assert.Equal(t, "run.log", cfg.LogPath)
}

func TestLoadRejectsNegativeSpeed(t *testing.T) {
	speed := int64(-1)
	_, err := Load(Overrides{Speed: &speed})
	assert.Error(t, err)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not_a_real_field = 1\n"), 0o644))

	_, err := Load(Overrides{ConfigPath: path})
	assert.Error(t, err)
}
