package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tofu702/solarstats/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("date", "2024-06-21").Debug("Computed solar noon")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Computed solar noon", entry["msg"])
	assert.Equal(t, "2024-06-21", entry["date"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewDefaults(t *testing.T) {
	logger, err := NewWithOutput(config.LoggingConfig{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewErrors(t *testing.T) {
	_, err := New(config.LoggingConfig{Format: "xml"})
	assert.EqualError(t, err, `unknown log format "xml"`)

	_, err = New(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}
