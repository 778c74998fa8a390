// Package config loads gwkit service configuration.
//
// LoadConfig resolves a YAML config file and an optional .env file, reads
// them with Viper, binds environment variables for every mapstructure key
// of the target struct and unmarshals the result:
//
//	var cfg config.ServiceConfig
//	err := config.LoadConfig("gwutil", &cfg, config.WithConfigFile("gwutil.yml"))
//
// Environment variables use the upper-cased service name as prefix and
// underscores for nesting, e.g. GWUTIL_ACL_ALLOW_IP for acl.allow_ip.
package config
