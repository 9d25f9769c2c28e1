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

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipebox.log")
	log, err := New("info", path)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("saved recipes", zap.Int("records", 4))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "saved recipes", entry["msg"])
	assert.Equal(t, "recipebox", entry["logger"])
	assert.EqualValues(t, 4, entry["records"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", "")
	assert.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	log, err := New("debug", Stderr)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}
