package utils

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

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := InitLogger(AppConfig{Name: "directory-test", LogPath: dir})
	require.NoError(t, err)

	logger.Info("hello", zap.String("component", "test"))
	logger.Debug("hidden")
	_ = logger.Sync() // stdout sync fails on pipes, the file writer is unbuffered

	data, err := os.ReadFile(filepath.Join(dir, "directory-test.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "directory-test", entry["app"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "timestamp")
}
