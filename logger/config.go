package logger

import "fmt"

// Config contains logging configuration.
type Config struct {
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	Level       string `yaml:"level" mapstructure:"level"`
	Format      string `yaml:"format" mapstructure:"format"`
	Output      string `yaml:"output" mapstructure:"output"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
	File        string `yaml:"file" mapstructure:"file"`
	FileLevel   string `yaml:"file_level" mapstructure:"file_level"`
	Places      string `yaml:"places" mapstructure:"places"`
}

var validLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	if c.File != "" && c.FileLevel == "" {
		c.FileLevel = "debug"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if !contains(validLevels, c.Level) {
		return fmt.Errorf("logging.level must be one of %v (got: %s)", validLevels, c.Level)
	}
	validFormats := []string{"json", "console", "text", FormatPretty}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("logging.format must be one of %v (got: %s)", validFormats, c.Format)
	}
	validOutputs := []string{"stdout", "stderr"}
	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("logging.output must be one of %v (got: %s)", validOutputs, c.Output)
	}
	if c.FileLevel != "" && !contains(validLevels, c.FileLevel) {
		return fmt.Errorf("logging.file_level must be one of %v (got: %s)", validLevels, c.FileLevel)
	}
	return nil
}

// LevelForVerbosity maps a numeric verbosity (0 = debug … 4 = panic) to a
// level name. Negative values return "" so callers can keep their default.
func LevelForVerbosity(n int) string {
	switch {
	case n < 0:
		return ""
	case n == 0:
		return "debug"
	case n == 1:
		return "info"
	case n == 2:
		return "warn"
	case n == 3:
		return "error"
	default:
		return "panic"
	}
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
