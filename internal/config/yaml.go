package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// maxConfigSize bounds config files; real ones are a few hundred bytes.
const maxConfigSize = 1 << 20

// errEmptyConfig is wrapped in ErrConfigParse for zero-byte files.
var errEmptyConfig = errors.New("empty config file")

// decode layers data over cfg. Keys absent from data keep the values
// already in cfg; unknown keys are rejected.
func decode(data []byte, cfg *Config) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: %v", ErrConfigParse, errEmptyConfig)
	}
	if len(data) > maxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), maxConfigSize)
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return nil
}

// YAML encodes c in the format LoadConfig reads.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}
