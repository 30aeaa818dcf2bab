package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ogurasousui/hr-smart-records/internal/platform/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]logrus.Level{
		"":        logrus.InfoLevel,
		"info":    logrus.InfoLevel,
		"DEBUG":   logrus.DebugLevel,
		" warn ":  logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"silent":  logrus.PanicLevel,
		"unknown": logrus.InfoLevel,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Level(raw), "level %q", raw)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.WithField("employee_id", "EMP-001").Info("saved")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.Equal(t, "EMP-001", entry["employee_id"])
}

func TestNewWithWriter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	logger.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}
