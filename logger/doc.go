// Package logger provides structured logging for gwkit using zerolog.
//
// It supports console and JSON output, a secondary log file with its own
// level, and debug places: a whitespace-separated list of component
// patterns that limits debug output to the matching components. A leading
// '-' excludes a pattern, and a pattern ending in ".*" also covers the
// components nested below it, so "acl.*" selects "acl" and "acl.http".
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  file: "/var/log/gw.log"
//	  file_level: "debug"
//	  places: "acl.* dialprefix -acl.http"
//
// # Usage
//
//	log := logger.Get("dialprefix")
//	log.Debug("rewrote number", logger.Fields("number", n))
package logger
