// Package errors provides the unified error type used across gwkit.
//
// Codec failures, configuration validation problems and access rejections
// are all reported as *AppError values carrying a machine-readable code, an
// optional HTTP status for callers that surface them over HTTP, free-form
// details and the underlying cause.
package errors
