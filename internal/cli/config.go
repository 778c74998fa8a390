package cli

import (
	"github.com/kbukum/gwkit/acl"
	"github.com/kbukum/gwkit/config"
	"github.com/kbukum/gwkit/dialprefix"
	"github.com/kbukum/gwkit/logger"
)

const serviceName = "gwutil"

// Config is the gwutil configuration file layout:
//
//	name: gwutil
//	logging:
//	  level: info
//	allow_ip: "127.0.0.1;10.0.0.*"
//	deny_ip: "*.*.*.*"
//	dial_prefixes: "+358,00358,0"
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	ACL                  acl.Config        `yaml:",inline" mapstructure:",squash"`
	DialPrefix           dialprefix.Config `yaml:",inline" mapstructure:",squash"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.ACL.ApplyDefaults()
	c.DialPrefix.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.ACL.Validate(); err != nil {
		return err
	}
	return c.DialPrefix.Validate()
}

// applyFlags lets command-line options override the configuration file.
func (c *Config) applyFlags(o *Options) {
	if o.Verbosity != nil {
		c.Logging.Level = logger.LevelForVerbosity(*o.Verbosity)
	}
	if o.LogFile != "" {
		c.Logging.File = o.LogFile
	}
	if o.FileVerbosity != nil {
		c.Logging.FileLevel = logger.LevelForVerbosity(*o.FileVerbosity)
	}
	if o.Debug != "" {
		c.Logging.Places = o.Debug
	}
}
