package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("debug", "json", &buf)

	log.Debug().Str("question", "q1").Msg("saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "q1", entry["question"])
	assert.Equal(t, "saved", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestSetup_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
	}{
		{"debug", true},
		{"info", false},
		{"", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := Setup(tt.level, "json", &buf)
			log.Debug().Msg("hidden?")
			assert.Equal(t, tt.wantDebug, buf.Len() > 0)
		})
	}
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "pretty", &buf)
	log.Info().Msg("imported")
	assert.True(t, strings.Contains(buf.String(), "imported"))
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}
