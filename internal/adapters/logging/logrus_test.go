package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSONFields(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: FormatJSON, Output: &out})
	require.NoError(t, err)

	logger.With("run", "r-1").Info("batch ready", "bin", "Bin02", "items", 3, "err", errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "batch ready", record["msg"])
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "r-1", record["run"])
	assert.Equal(t, "Bin02", record["bin"])
	assert.EqualValues(t, 3, record["items"])
	assert.Equal(t, "boom", record["err"])
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &out})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, out.String())

	logger.Warn("keep-alive failed", "err", "timeout")
	assert.Contains(t, out.String(), "keep-alive failed")
	assert.Contains(t, out.String(), "err=timeout")
}

func TestLoggerOddPairs(t *testing.T) {
	t.Parallel()

	got := fields([]any{"stage", "dock", "orphan"})
	assert.Equal(t, "dock", got["stage"])
	assert.Equal(t, "(missing)", got["orphan"])
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}
