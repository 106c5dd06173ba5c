package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("breakpoint", "md").Debug("classes generated", "count", 3)

	entry := decode(t, buf)
	require.Equal(t, "classes generated", entry["message"])
	require.Equal(t, "md", entry["breakpoint"])
	require.EqualValues(t, 3, entry["count"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerDefaultLevelIsWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	require.Empty(t, strings.TrimSpace(buf.String()))
	require.True(t, log.Enabled("warn"))
	require.False(t, log.Enabled("debug"))
}

func TestLoggerError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "error", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"file": "button.yaml"}).Error(errors.New("boom"), "reload failed")

	entry := decode(t, buf)
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "button.yaml", entry["file"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.With("k", "v").Info("x")
		log.Error(errors.New("e"), "y")
		require.False(t, log.Enabled("error"))
	})
	Nop().Warn("discarded")
}
