// Package config holds the settings of a QingStor client: credentials,
// endpoint, protocol and retry options.
//
// A Config is built with Default, New or one of the Load functions and must be
// checked before use:
//
//	cfg, err := config.LoadFromFile("qingstor.yaml")
//	if err != nil {
//	    return err
//	}
//	if err = cfg.Check(); err != nil {
//	    return err
//	}
//
// Check derives Port from Protocol. Any port set before Check is discarded.
package config

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strconv"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/rise-and-shine/qingstor/mask"
	"gopkg.in/yaml.v3"
)

// Config defines the options of a QingStor client.
type Config struct {
	// AccessKeyID identifies the account. Required.
	AccessKeyID string `yaml:"access_key_id" validate:"required"`

	// SecretAccessKey signs requests. Required.
	SecretAccessKey string `yaml:"secret_access_key" validate:"required" mask:"true"`

	// Host is the storage endpoint host. Required.
	Host string `yaml:"host" validate:"required" default:"qingstor.com"`

	// Port is set by Check from Protocol.
	Port int `yaml:"port"`

	ConnectionRetries   int    `yaml:"connection_retries" default:"3"`
	AdditionalUserAgent string `yaml:"additional_user_agent"`
	LogLevel            string `yaml:"log_level" default:"INFO"`

	// Protocol is either "http" or "https".
	Protocol Protocol `yaml:"protocol" validate:"oneof=http https" default:"https"`
}

// Default returns a Config populated with default values.
func Default() Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic("[config]: failed to set default values: " + err.Error())
	}
	return cfg
}

// New returns a default Config with the given credentials.
func New(accessKeyID, secretAccessKey string) Config {
	cfg := Default()
	cfg.AccessKeyID = accessKeyID
	cfg.SecretAccessKey = secretAccessKey
	return cfg
}

// Check validates required fields in declaration order and reports the first
// missing one. On success Port is overwritten with the protocol's port.
func (c *Config) Check() error {
	err := getValidator().Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
			return errx.Wrap(err)
		}

		fieldErr := validationErrors[0]
		if fieldErr.Tag() == "required" {
			return missingField(fieldErr.Field())
		}
		return invalidField(fieldErr.Field(), fieldErr.Value())
	}

	c.Port = c.Protocol.Port()
	return nil
}

// Endpoint returns the base URL built from Protocol, Host and Port.
func (c *Config) Endpoint() string {
	return fmt.Sprintf("%s://%s", c.Protocol, net.JoinHostPort(c.Host, strconv.Itoa(c.Port)))
}

// String renders the config as YAML with secrets masked.
func (c Config) String() string {
	out, err := yaml.Marshal(mask.Struct(c))
	if err != nil {
		return fmt.Sprintf("[config]: failed to marshal config: %v", err)
	}
	return string(out)
}

var validate *validator.Validate //nolint: gochecknoglobals // validator caches struct metadata, one instance is enough

func getValidator() *validator.Validate {
	return validate
}

func init() { //nolint: gochecknoinits // validator must be ready before the first Check
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(getTagName)
}

// getTagName reports fields by their yaml key so errors match the config file.
func getTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}
