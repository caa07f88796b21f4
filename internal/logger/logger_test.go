package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "grid", "rows": 10})
	log.Info("dataset loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "dataset loaded", entry["message"])
	require.Equal(t, "grid", entry["widget"])
	require.Equal(t, float64(10), entry["rows"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	// Only the configuration schema's levels are accepted; zerolog's
	// fatal and panic are not part of the surface.
	for _, level := range []string{"chatty", "fatal", "panic", "disabled"} {
		_, err := New(Options{Level: level})
		require.Error(t, err, level)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.WithComponent("grid").Info("page changed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "grid", entry["component"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "input"})
	log.Error(errors.New("boom"), "validation failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "validation failed", entry["message"])
	require.Equal(t, "input", entry["widget"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
	require.Nil(t, log.WithComponent("grid"))
	log.Info("no panic")
	log.Warn("no panic")
	log.Error(nil, "no panic")
}
