package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangemap/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"DEBUG":   zerolog.DebugLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"WARN":    zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.Config{LogFormat: config.LogFormatJSON, LogLevel: "INFO"}, &buf)

	l.Debug().Msg("hidden")
	l.Info().Int64("answer", 46).Msg("part2")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "part2", entry["message"])
	assert.EqualValues(t, 46, entry["answer"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, config.LogFormatPretty, "DEBUG")

	l.Debug().Str("stage", "seed-to-soil").Msg("applied")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "applied")
	assert.Contains(t, buf.String(), "stage=seed-to-soil")
}
