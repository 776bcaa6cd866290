package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	var out bytes.Buffer
	log := NewJSON("debug", &out).With(String("component", "test"))

	log.Info("interval complete", String("interval", "Work"), Int("minutes", 25), Err(errors.New("boom")))

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "interval complete", line["message"])
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, "Work", line["interval"])
	assert.EqualValues(t, 25, line["minutes"])
	assert.Equal(t, "boom", line["err"])
	assert.Contains(t, line["caller"], "logging_test.go")
}

func TestLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	log := NewJSON("warning", &out)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, out.Len())
	assert.False(t, log.Enabled(LevelInfo))

	log.Warn("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestZeroValueAndNopAreSilent(t *testing.T) {
	var zero Logger
	zero.Error("nothing")
	Nop().Error("nothing")
}

func TestNewWithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "timer.log")
	log, closer, err := New(Config{Level: "info", FilePath: path})
	require.NoError(t, err)

	log.Info("started")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}
