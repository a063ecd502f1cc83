package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neonbreaker/internal/game"
)

func setFlags(t *testing.T, configPath, difficulty string) {
	t.Helper()
	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = configPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldConfig, oldDifficulty
	})
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	setFlags(t, "", "hard")

	cfg, source, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	assert.Equal(t, 3, cfg.Gameplay.Lives)
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	setFlags(t, "", "nightmare")

	_, _, err := loadConfig()
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  lives: 0\n"), 0o600))
	setFlags(t, path, "")

	_, _, err := loadConfig()
	assert.ErrorContains(t, err, "invalid config")
	assert.ErrorContains(t, err, "lives")
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "neon.log")

	logger, closeLog, err := openLogger(path, "debug")
	require.NoError(t, err)
	logger.Info("hello", "answer", 42)
	closeLog()
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "answer=42")
}

func TestOpenLoggerBadLevel(t *testing.T) {
	logger, closeLog, err := openLogger("", "loud")
	assert.Error(t, err)
	require.NotNil(t, logger)
	closeLog()
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "a", "b.log"), expandHome("~/a/b.log"))
	assert.Equal(t, "/var/log/x.log", expandHome("/var/log/x.log"))
}

func TestSimSummary(t *testing.T) {
	var s simSummary
	s.add([]game.Event{
		{Kind: game.EventWallBounce},
		{Kind: game.EventBrickDestroyed},
		{Kind: game.EventBrickDestroyed},
		{Kind: game.EventPaddleHit},
		{Kind: game.EventLifeLost},
		{Kind: game.EventPhaseChanged},
	})

	assert.Equal(t, simSummary{WallBounces: 1, PaddleHits: 1, Bricks: 2, LivesLost: 1}, s)
}
