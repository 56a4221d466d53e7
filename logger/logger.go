// Package logger provides the structured logger used by the SDK.
//
// It wraps zap's SugaredLogger behind a small interface so callers can plug
// their own implementation into a Service.
package logger

import (
	"os"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the logging interface used across the SDK.
type Logger interface {
	// Debugw logs a message with key-value pairs at debug level.
	Debugw(msg string, keysAndValues ...any)
	// Infow logs a message with key-value pairs at info level.
	Infow(msg string, keysAndValues ...any)
	// Warnw logs a message with key-value pairs at warn level.
	Warnw(msg string, keysAndValues ...any)
	// Errorw logs a message with key-value pairs at error level.
	Errorw(msg string, keysAndValues ...any)

	// With creates a new logger with the given key-value pairs attached to
	// every subsequent entry.
	With(keysAndValues ...any) Logger

	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Sync flushes any buffered log entries.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

// New creates a Logger writing to stdout. Empty Config fields take their
// default values.
func New(cfg Config) (Logger, error) {
	return newLogger(cfg, zapcore.Lock(os.Stdout))
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newLogger(cfg Config, out zapcore.WriteSyncer) (Logger, error) {
	err := defaults.Set(&cfg)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, errx.New(
			"invalid logger config",
			errx.WithCode(CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"error": err.Error()}),
		)
	}

	zapConfig, err := cfg.getZapConfig()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	var enc zapcore.Encoder
	if cfg.Encoding == EncodingConsole {
		enc = newDevEncoder(zapConfig.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(zapConfig.EncoderConfig)
	}

	core := zapcore.NewCore(enc, out, zapConfig.Level)
	zapLogger := zap.New(core, zap.AddCaller())

	return &logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.With(keysAndValues...),
	}
}

func (l *logger) Named(name string) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.Named(name),
	}
}
