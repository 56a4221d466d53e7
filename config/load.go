package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a YAML config from path.
// Keys absent from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, ioFailed(err, path)
	}
	return decode(data)
}

// LoadFromString decodes a YAML config held in memory.
func LoadFromString(content string) (Config, error) {
	return decode([]byte(content))
}

// LoadFromReader decodes a YAML config read from r until EOF.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, ioFailed(err, "reader")
	}
	return decode(data)
}

// decode applies the document on top of Default, so present keys override
// defaults (even with empty values) and absent keys keep them.
func decode(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, deserializationFailed(err)
	}

	return cfg, nil
}
