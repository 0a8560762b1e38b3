package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pragati.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	timing, err := cfg.Timing()
	require.NoError(t, err)
	assert.Equal(t, 13500*time.Millisecond, timing.Duration)
	assert.Equal(t, 50*time.Millisecond, timing.TickInterval)
	assert.Equal(t, 700*time.Millisecond, timing.RevealDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
analysis:
  duration: 45s
  tick_interval: 100ms
seed: 42
log:
  level: debug
  format: console
  file: /tmp/pragati.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	timing, err := cfg.Timing()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timing.Duration)
	assert.Equal(t, 100*time.Millisecond, timing.TickInterval)
	assert.Equal(t, 700*time.Millisecond, timing.RevealDelay, "unset keys keep defaults")
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/tmp/pragati.log", cfg.Log.File)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "analysis: [unclosed"},
		{"bad duration", "analysis:\n  duration: soon\n"},
		{"zero tick", "analysis:\n  tick_interval: 0s\n"},
		{"negative reveal", "analysis:\n  reveal_delay: -1s\n"},
		{"tick longer than duration", "analysis:\n  duration: 1s\n  tick_interval: 2s\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}
