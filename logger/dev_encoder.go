package logger

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// devEncoder writes a colored console header followed by the entry's fields
// as indented JSON. Context fields added with With are accumulated by the
// embedded JSON encoder, so Clone keeps them.
type devEncoder struct {
	zapcore.Encoder
	header zapcore.Encoder
	pool   buffer.Pool
}

func newDevEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	return &devEncoder{
		Encoder: zapcore.NewJSONEncoder(encoderConfig),
		header:  zapcore.NewConsoleEncoder(encoderConfig),
		pool:    buffer.NewPool(),
	}
}

func (e *devEncoder) Clone() zapcore.Encoder {
	return &devEncoder{
		Encoder: e.Encoder.Clone(),
		header:  e.header,
		pool:    e.pool,
	}
}

func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	headerBuf, err := e.header.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}
	line := colorizeLevel(strings.TrimRight(headerBuf.String(), "\n"), entry.Level)
	headerBuf.Free()

	fieldBuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer fieldBuf.Free()

	var fieldsMap map[string]any
	if jsonErr := json.Unmarshal(fieldBuf.Bytes(), &fieldsMap); jsonErr != nil {
		line += " " + strings.TrimRight(fieldBuf.String(), "\n")
	} else {
		line += formatFields(fieldsMap)
	}

	buf := e.pool.Get()
	buf.AppendString(line)
	buf.AppendString("\n")

	return buf, nil
}

// formatFields drops the keys already printed in the header and indents the rest.
func formatFields(fieldsMap map[string]any) string {
	for _, key := range []string{messageKey, levelKey, nameKey, callerKey, timeKey} {
		delete(fieldsMap, key)
	}
	if len(fieldsMap) == 0 {
		return ""
	}

	pretty, err := json.MarshalIndent(fieldsMap, "", "  ")
	if err != nil {
		return ""
	}
	return "\n" + string(pretty)
}

func colorizeLevel(line string, level zapcore.Level) string {
	var c *color.Color

	switch level {
	case zapcore.DebugLevel:
		c = color.New(color.FgCyan)
	case zapcore.InfoLevel:
		c = color.New(color.FgGreen)
	case zapcore.WarnLevel:
		c = color.New(color.FgYellow)
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		c = color.New(color.FgRed, color.Bold)
	case zapcore.InvalidLevel:
		c = color.New(color.FgMagenta)
	default:
		return line
	}

	lvl := level.CapitalString()
	return strings.Replace(line, lvl, c.Sprint(lvl), 1)
}
