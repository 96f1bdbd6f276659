package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Run("text renames error key", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, slog.LevelInfo, FormatText)
		logger.Info("failed", "error", "boom")
		assert.Contains(t, buf.String(), "err=boom")
		assert.NotContains(t, buf.String(), "error=")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, slog.LevelInfo, FormatJSON)
		logger.Info("minimized", "states", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "minimized", record["msg"])
		assert.Equal(t, float64(3), record["states"])
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, slog.LevelInfo, FormatText)
		logger.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("ignored", "error", "boom")
	})
}
