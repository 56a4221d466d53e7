package logger

import (
	"strings"

	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	callerKey  = "file"
	timeKey    = "time"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// CodeInvalidLevel is returned by ParseLevel for an unknown level name.
const CodeInvalidLevel = "LOGGER_INVALID_LEVEL"

// CodeInvalidConfig is returned by New when Config fails validation.
const CodeInvalidConfig = "LOGGER_INVALID_CONFIG"

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	// Valid values are: "debug", "info", "warn", "error", "fatal".
	// Default is "info".
	Level string `yaml:"level" validate:"oneof=debug info warn error fatal" default:"info"`

	// Encoding specifies the log format.
	// Valid values are: "json", "console"
	// Default is "json".
	//
	// "console" colors the level and pretty-prints fields, which is meant for
	// local development. "json" writes one compact object per entry.
	Encoding string `yaml:"encoding" validate:"oneof=json console" default:"json"`
}

// ParseLevel maps an SDK style level name such as "INFO" or "WARNING" to the
// level names accepted by Config.Level. Matching is case-insensitive.
func ParseLevel(s string) (string, error) {
	switch lvl := strings.ToLower(strings.TrimSpace(s)); lvl {
	case "debug", "info", "error", "fatal":
		return lvl, nil
	case "warn", "warning":
		return "warn", nil
	default:
		return "", errx.New(
			"unknown log level: "+s,
			errx.WithCode(CodeInvalidLevel),
			errx.WithType(errx.T_Validation),
		)
	}
}

// getZapConfig converts the logger Config to a zap.Config.
func (c Config) getZapConfig() (*zap.Config, error) {
	zapLevel := zap.NewAtomicLevel()

	err := zapLevel.UnmarshalText([]byte(c.Level))
	if err != nil {
		return nil, errx.Wrap(err)
	}

	// The console encoder colors levels on its own.
	encodeLevel := zapcore.LowercaseLevelEncoder
	if c.Encoding == EncodingConsole {
		encodeLevel = zapcore.CapitalLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	zapConfig := zap.Config{
		Level:         zapLevel,
		Encoding:      c.Encoding,
		EncoderConfig: encoderConfig,
	}

	return &zapConfig, nil
}
