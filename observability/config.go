package observability

import (
	"fmt"
	"time"
)

const (
	defaultEndpoint = "localhost:4318"
	defaultInterval = 15 * time.Second
)

// Config configures the OTLP/HTTP trace and metric exporters.
type Config struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"` // host:port
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the ratio of traces kept, 0 < rate <= 1. Zero selects 1.
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = defaultInterval
	}
}

// Validate checks ranges; call ApplyDefaults first.
func (c *Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("sample_rate must be within [0, 1] (got: %v)", c.SampleRate)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative (got: %s)", c.Interval)
	}
	if c.Enabled && c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when telemetry is enabled")
	}
	return nil
}
