package dialprefix

import (
	"strings"

	"github.com/kbukum/gwkit/validation"
)

// Config holds the prefix rules of a Normalizer.
type Config struct {
	Prefixes string `yaml:"dial_prefixes" mapstructure:"dial_prefixes" validate:"omitempty,dialprefixes"`
}

// ApplyDefaults trims surrounding whitespace left by config files.
func (c *Config) ApplyDefaults() {
	c.Prefixes = strings.TrimSpace(c.Prefixes)
}

// Validate rejects malformed rules, including empty candidates.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
