package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps config files at 1 MiB.
const MaxInputSize = 1 << 20

var (
	ErrEmptyInput    = errors.New("empty config file")
	ErrInputTooLarge = errors.New("config file exceeds maximum size")
)

// decodeStrict decodes YAML into v, rejecting unknown fields.
func decodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}
