package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoPathIsNop(t *testing.T) {
	log, err := New("debug", "json", "")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(-1), "nop core enables nothing")
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pragati.log")
	log, err := New("info", "json", path)
	require.NoError(t, err)

	log.Info("analysis started")
	log.Debug("tick dropped")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"analysis started"`)
	assert.Contains(t, out, `"service_name":"pragati"`)
	assert.Contains(t, out, `"timestamp"`)
	assert.NotContains(t, out, "tick dropped", "debug is below the info level")
}

func TestNew_LevelParsing(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log, err := New(tc.level, "console", filepath.Join(dir, tc.level+".log"))
			require.NoError(t, err)
			core := log.Core()
			assert.Equal(t, tc.debugOn, core.Enabled(-1))
			assert.Equal(t, tc.infoOn, core.Enabled(0))
			assert.Equal(t, tc.warnOn, core.Enabled(1))
		})
	}
}
