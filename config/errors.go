package config

import (
	"fmt"

	"github.com/code19m/errx"
)

// Error codes for configuration operations.
const (
	// CodeMissingField is returned by Check when a required field is empty.
	CodeMissingField = "CONFIG_MISSING_FIELD"

	// CodeInvalidField is returned by Check when a field holds an unsupported value.
	CodeInvalidField = "CONFIG_INVALID_FIELD"

	// CodeDeserializationFailed is returned when the YAML source is malformed
	// or a field has the wrong shape.
	CodeDeserializationFailed = "CONFIG_DESERIALIZATION_FAILED"

	// CodeIOFailed is returned when the config source cannot be read.
	CodeIOFailed = "CONFIG_IO_FAILED"
)

func missingField(name string) error {
	return errx.New(
		fmt.Sprintf("field %q cannot be empty", name),
		errx.WithCode(CodeMissingField),
		errx.WithType(errx.T_Validation),
		errx.WithFields(errx.M{name: "This field is required"}),
	)
}

func invalidField(name string, value any) error {
	return errx.New(
		fmt.Sprintf("field %q has unsupported value %v", name, value),
		errx.WithCode(CodeInvalidField),
		errx.WithType(errx.T_Validation),
		errx.WithFields(errx.M{name: "Must be one of: http, https"}),
	)
}

func deserializationFailed(err error) error {
	return errx.Wrap(
		err,
		errx.WithCode(CodeDeserializationFailed),
		errx.WithType(errx.T_Validation),
	)
}

func ioFailed(err error, source string) error {
	return errx.Wrap(
		err,
		errx.WithCode(CodeIOFailed),
		errx.WithDetails(errx.D{"source": source}),
	)
}
