package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"variant": "gradient_ok", "state": "hovered"})
	log.Info("resolved appearance")

	entry := decode(t, buf)
	require.Equal(t, "resolved appearance", entry["message"])
	require.Equal(t, "gradient_ok", entry["variant"])
	require.Equal(t, "hovered", entry["state"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerWithTheme(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	theme := styles.NewThemeState(styles.StyleDeepSea)
	log.WithTheme(theme).Debug("theme applied")

	entry := decode(t, buf)
	require.Equal(t, "deep_sea", entry["style"])
	require.Equal(t, true, entry["nightly"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled("debug"))
	require.True(t, log.Enabled("warn"))
	require.False(t, log.Enabled("chatty"))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"palette_file": "custom.yaml"})
	log.Error(errors.New("boom"), "failed")

	entry := decode(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "custom.yaml", entry["palette_file"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.WithTheme(styles.NewThemeState(styles.StyleDay)).Warn("ignored")
		Discard().Error(errors.New("boom"), "ignored")
	})
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
}
