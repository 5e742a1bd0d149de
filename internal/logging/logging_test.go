package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Console: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("key", "mastery/topics"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "mastery/topics")
}

func TestNew_EmptyLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf})
	require.NoError(t, err)

	log.Debug("debug line")
	log.Info("info line")
	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_FileGetsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quizmastery.log")
	var buf bytes.Buffer
	log, err := New(Options{Level: "error", File: path, MaxSizeMB: 1, Console: &buf})
	require.NoError(t, err)

	log.Named("mastery").Debug("set recorded", zap.Int("points_earned", 3))
	require.NoError(t, log.Sync())

	assert.Empty(t, buf.String(), "console filters below error")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "mastery", entry["logger"])
	assert.Equal(t, "set recorded", entry["msg"])
	assert.EqualValues(t, 3, entry["points_earned"])
}
