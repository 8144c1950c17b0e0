package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 768, cfg.Width)
	assert.Equal(t, board.SetupPawns, cfg.Setup)
	assert.False(t, cfg.Resizable)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupMap(map[string]string{
		EnvWidth:     "1024",
		EnvHeight:    "512",
		EnvResizable: "true",
		EnvSetup:     "standard",
		EnvArmy:      "reaper",
		EnvColor:     "black",
		EnvLogLevel:  "debug",
		EnvDebug:     "1",
		EnvHUD:       "false",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 512, cfg.Height)
	assert.True(t, cfg.Resizable)
	assert.Equal(t, board.SetupStandard, cfg.Setup)
	assert.Equal(t, board.Reaper, cfg.Army)
	assert.Equal(t, board.Black, cfg.Color)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.ShowHUD)
}

func TestInvalidValues(t *testing.T) {
	for name, v := range map[string]string{
		EnvWidth:    "-3",
		EnvHeight:   "tall",
		EnvSetup:    "chess960",
		EnvArmy:     "zombies",
		EnvColor:    "green",
		EnvLogLevel: "loud",
		EnvDebug:    "maybe",
	} {
		_, err := FromLookup(lookupMap(map[string]string{name: v}))
		assert.Error(t, err, "%s=%s", name, v)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.env")
	require.NoError(t, os.WriteFile(path, []byte(EnvArmy+"=animals\n"), 0o600))
	t.Setenv(EnvArmy, "")
	os.Unsetenv(EnvArmy)

	cfg, err := Load(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, board.Animals, cfg.Army)
}
