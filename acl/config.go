package acl

import (
	"strings"

	"github.com/kbukum/gwkit/validation"
)

// Config holds the pattern lists of a Policy. Each list is ';'-separated
// alternatives in which '*' matches up to the next '.'.
type Config struct {
	AllowIP string `yaml:"allow_ip" mapstructure:"allow_ip" validate:"omitempty,patternlist"`
	DenyIP  string `yaml:"deny_ip" mapstructure:"deny_ip" validate:"omitempty,patternlist"`
}

// ApplyDefaults trims surrounding whitespace left by config files.
func (c *Config) ApplyDefaults() {
	c.AllowIP = strings.TrimSpace(c.AllowIP)
	c.DenyIP = strings.TrimSpace(c.DenyIP)
}

// Validate checks both lists.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
