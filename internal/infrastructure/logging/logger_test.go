package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Layer:     "infrastructure",
		Component: "config",
	})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded config", "path", "/tmp/javac.yaml")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, "infrastructure", entry["layer"])
	require.Equal(t, "config", entry["component"])
	require.Equal(t, "abc123", entry["correlation_id"])
	require.Equal(t, "/tmp/javac.yaml", entry["path"])
	require.Equal(t, "loaded config", entry["message"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	child := logger.With("component", "javac").(*Logger)
	child.Warn(context.Background(), "compiler failed", "target", "//foo:bar", "component", "javac-step")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "javac-step", entries[0]["component"])
	require.Equal(t, "//foo:bar", entries[0]["target"])
	require.Equal(t, "infrastructure", entries[0]["layer"])
}

func TestLoggerRendersErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.Error(context.Background(), "launch failed", "error", errors.New("no such file"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "no such file", entries[0]["error"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	require.Zero(t, buf.Len())

	logger.Warn(context.Background(), "shown")
	require.NotZero(t, buf.Len())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNoOpLogger(t *testing.T) {
	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")
	require.Same(t, noOp, noOp.With("key", "value"))
}

func TestGeneratedCorrelationIDsAreUnique(t *testing.T) {
	first := GenerateCorrelationID()
	second := GenerateCorrelationID()
	require.Len(t, first, 36)
	require.NotEqual(t, first, second)
}
