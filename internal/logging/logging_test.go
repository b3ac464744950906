package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := Setup("", slog.LevelDebug)
	require.NoError(t, err)

	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestSetup_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dw.log")

	logger, closer, err := Setup(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("popup status", "from", "closed", "to", "opening")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug records are filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "popup status", rec["msg"])
	assert.Equal(t, "opening", rec["to"])
}

func TestSetup_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dw.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := Setup(path, slog.LevelInfo)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestSetup_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, _, err := Setup(filepath.Join(blocker, "dw.log"), slog.LevelInfo)

	assert.Error(t, err)
}
