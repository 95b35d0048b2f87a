package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

var osReadFile = os.ReadFile

// Load reads path on top of Defaults. A missing file yields Defaults unless
// required is true, in which case it is an error.
func Load(path string, required bool) (*Config, error) {
	data, err := osReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			cfg := Defaults()
			if err := cfg.expandPaths(path); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML data over Defaults, validates it and expands paths.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	if err := cfg.expandPaths(source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict re-decodes the data rejecting keys the structs don't declare.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
