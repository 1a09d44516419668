package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	bl, err := LoadBrickLayer("")
	require.NoError(t, err)
	assert.Equal(t, 20, bl.Rows)
	assert.Equal(t, 10, bl.Cols)
	assert.InDelta(t, 0.85, bl.GravityBase, 1e-9)
	assert.InDelta(t, 0.05, bl.GravityMin, 1e-9)

	ms, err := LoadMinesweeper("")
	require.NoError(t, err)
	assert.Equal(t, 40, ms.MineCount)

	pl, err := LoadPipeline("")
	require.NoError(t, err)
	assert.Equal(t, 5, pl.PairCount)
	assert.Positive(t, pl.MaxAttempts)

	sn, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, 15, sn.MaxItems)
	assert.InDelta(t, 0.75, sn.AppleRatio, 1e-9)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed: 9\napple_ratio: 0.5\n"), 0o600))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, cfg.Speed, 1e-9)
	assert.InDelta(t, 0.5, cfg.AppleRatio, 1e-9)
	// Unset keys keep their defaults
	assert.Equal(t, 15, cfg.Rows)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("speed: [not a number"), 0o600))
	_, err = LoadSnake(bad)
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	bl := DefaultBrickLayerConfig()
	ApplyBrickLayerPreset(&bl, DifficultyExpert)
	assert.InDelta(t, 0.45, bl.GravityBase, 1e-9)
	assert.InDelta(t, 0.0022, bl.GravityAccel, 1e-9)

	ms := DefaultMinesweeperConfig()
	ApplyMinesweeperPreset(&ms, DifficultyEasy)
	assert.Equal(t, 9, ms.Rows)
	assert.Equal(t, 10, ms.MineCount)

	pl := DefaultPipelineConfig()
	ApplyPipelinePreset(&pl, DifficultyExtreme)
	assert.Equal(t, 9, pl.Rows)
	assert.Equal(t, 8, pl.PairCount)

	sn := DefaultSnakeConfig()
	ApplySnakePreset(&sn, DifficultyHard)
	assert.InDelta(t, 8.0, sn.Speed, 1e-9)
	assert.InDelta(t, 0.50, sn.AppleRatio, 1e-9)

	wi := DefaultWordItConfig()
	ApplyWordItPreset(&wi, DifficultyHard)
	assert.True(t, wi.HardMode)
	ApplyWordItPreset(&wi, DifficultyNormal)
	assert.False(t, wi.HardMode)

	hm := DefaultHangmanConfig()
	ApplyHangmanPreset(&hm, DifficultyExpert)
	assert.Equal(t, "expert", hm.ListKey)
}
