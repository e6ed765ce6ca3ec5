package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "disc.log")
	logger, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("scored", zap.Int("dominance", 60))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "scored", entry["msg"])
	assert.EqualValues(t, 60, entry["dominance"])
	assert.Contains(t, entry, "time")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", "-")
	assert.Error(t, err)
}

func TestNew_Stderr(t *testing.T) {
	logger, err := New("debug", Stderr)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNop(t *testing.T) {
	assert.False(t, Nop().Core().Enabled(zap.ErrorLevel))
}
