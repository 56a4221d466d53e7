package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "upper info", input: "INFO", expected: "info"},
		{name: "lower debug", input: "debug", expected: "debug"},
		{name: "mixed case error", input: "Error", expected: "error"},
		{name: "warn", input: "WARN", expected: "warn"},
		{name: "warning alias", input: "WARNING", expected: "warn"},
		{name: "fatal with spaces", input: " FATAL ", expected: "fatal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lvl)
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := ParseLevel("verbose")

	require.Error(t, err)
	assert.Equal(t, CodeInvalidLevel, errx.AsErrorX(err).Code())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "trace"})

	require.Error(t, err)
	assert.Equal(t, CodeInvalidConfig, errx.AsErrorX(err).Code())
}

func TestNew_Defaults(t *testing.T) {
	l, err := New(Config{})

	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestLogger_JSON(t *testing.T) {
	var out bytes.Buffer
	l, err := newLogger(Config{Level: "info", Encoding: EncodingJSON}, zapcore.AddSync(&out))
	require.NoError(t, err)

	l.Named("qingstor").With("host", "qingstor.com").Infow("service initialized", "port", 443)
	l.Debugw("filtered out")
	require.NoError(t, l.Sync())

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "service initialized", entry[messageKey])
	assert.Equal(t, "info", entry[levelKey])
	assert.Equal(t, "qingstor", entry[nameKey])
	assert.Equal(t, "qingstor.com", entry["host"])
	assert.InDelta(t, 443, entry["port"], 0)
	assert.Contains(t, entry, callerKey)
	assert.Contains(t, entry, timeKey)
}

func TestLogger_Console(t *testing.T) {
	var out bytes.Buffer
	l, err := newLogger(Config{Level: "debug", Encoding: EncodingConsole}, zapcore.AddSync(&out))
	require.NoError(t, err)

	l.With("host", "qingstor.com").Warnw("retrying", "attempt", 2)
	l.Debugw("no fields")

	text := out.String()
	assert.Contains(t, text, "WARN")
	assert.Contains(t, text, "retrying")
	assert.Contains(t, text, `"host": "qingstor.com"`)
	assert.Contains(t, text, `"attempt": 2`)
	assert.Contains(t, text, "no fields")
	assert.NotContains(t, text, `"msg"`)
}

func TestNewNop(t *testing.T) {
	l := NewNop()

	assert.NotPanics(t, func() {
		l.With("k", "v").Named("nop").Errorw("discarded")
	})
}
