package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZeroLogger("gestorai", "debug", "json", &buf)

	logger.Warn("login failed", "user_id", 7, "error", errors.New("bad password"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "login failed", entry["message"])
	assert.Equal(t, "gestorai", entry["service"])
	assert.Equal(t, float64(7), entry["user_id"])
	assert.Equal(t, "bad password", entry["error"])
}

func TestZeroLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZeroLogger("gestorai", "warn", "json", &buf)

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_SilentUnderTest(t *testing.T) {
	_, ok := NewLogger("gestorai", "test", "debug", "").(*NoOpLogger)
	assert.True(t, ok)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ana****@example.com", MaskEmail("ana.maria@example.com"))
	assert.Equal(t, "jo****@x.io", MaskEmail("jo@x.io"))
	assert.Equal(t, "****", MaskEmail("not-an-email"))
}
