package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := parseFlags(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.name)
		assert.NotZero(t, cfg.seed)
		assert.False(t, cfg.noGhost)
		assert.Empty(t, cfg.logFile)
		assert.False(t, cfg.debug)
	})

	t.Run("environment defaults", func(t *testing.T) {
		t.Setenv("TERMTRIS_NAME", "alice")
		t.Setenv("TERMTRIS_SEED", "42")
		t.Setenv("TERMTRIS_NOGHOST", "true")
		t.Setenv("TERMTRIS_DEBUG", "1")
		t.Setenv("TERMTRIS_LOG", "game.log")

		cfg, err := parseFlags(nil)
		require.NoError(t, err)
		assert.Equal(t, &config{name: "alice", seed: 42, noGhost: true, logFile: "game.log", debug: true}, cfg)
	})

	t.Run("flags win over the environment", func(t *testing.T) {
		t.Setenv("TERMTRIS_NAME", "alice")
		t.Setenv("TERMTRIS_SEED", "42")

		cfg, err := parseFlags([]string{"-name", "bob", "-seed", "7", "-noghost"})
		require.NoError(t, err)
		assert.Equal(t, "bob", cfg.name)
		assert.Equal(t, uint64(7), cfg.seed)
		assert.True(t, cfg.noGhost)
	})

	t.Run("invalid environment values", func(t *testing.T) {
		t.Setenv("TERMTRIS_SEED", "many")
		_, err := parseFlags(nil)
		assert.ErrorContains(t, err, "TERMTRIS_SEED")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseFlags([]string{"-online"})
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("no file discards logs", func(t *testing.T) {
		l, closeLog, err := newLogger(&config{})
		require.NoError(t, err)
		defer closeLog()
		assert.False(t, l.Enabled(t.Context(), 0))
	})

	t.Run("file logger honors the debug level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "termtris.log")
		l, closeLog, err := newLogger(&config{logFile: path, debug: true})
		require.NoError(t, err)
		defer closeLog()
		assert.True(t, l.Enabled(t.Context(), -4))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, _, err := newLogger(&config{logFile: filepath.Join(t.TempDir(), "missing", "termtris.log")})
		assert.Error(t, err)
	})
}
