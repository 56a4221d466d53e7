// Package service is the entry point of the QingStor SDK. A Service is built
// from a checked config.Config and is the attachment point for request
// building.
package service

import (
	"github.com/code19m/errx"
	"github.com/rise-and-shine/qingstor/config"
	"github.com/rise-and-shine/qingstor/logger"
)

// CodeNilConfig is returned by Init when no config is given.
const CodeNilConfig = "SERVICE_NIL_CONFIG"

// Service holds a reference to a checked Config.
//
// The Config must not be modified while the Service is in use.
type Service struct {
	config *config.Config
	logger logger.Logger
}

// Init checks cfg and returns a Service referencing it.
// If the check fails the error is returned unchanged and no Service is built.
func Init(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, errx.New("config is nil", errx.WithCode(CodeNilConfig), errx.WithType(errx.T_Validation))
	}

	options := Options{Logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	options.Logger.Debugw("qingstor service initialized",
		"host", cfg.Host,
		"port", cfg.Port,
		"protocol", cfg.Protocol.String(),
	)

	return &Service{
		config: cfg,
		logger: options.Logger,
	}, nil
}

// Config returns the config the service was built from.
func (s *Service) Config() *config.Config {
	return s.config
}

// Logger returns the logger the service writes to.
func (s *Service) Logger() logger.Logger {
	return s.logger
}
