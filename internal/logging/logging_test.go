package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", false, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("key", "calculation_history").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "calculation_history", entry["key"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		log := New(level, false, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel(), level)
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", true, &buf)
	log.Debug().Msg("migrations applied")
	assert.Contains(t, buf.String(), "migrations applied")
	assert.NotContains(t, buf.String(), `"message"`)
}
