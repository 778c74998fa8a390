package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Codec errors
const (
	// ErrCodeTruncatedInput indicates the input ended before a complete value was read.
	ErrCodeTruncatedInput ErrorCode = "TRUNCATED_INPUT"
	// ErrCodeValueOverflow indicates a decoded value does not fit the target width.
	ErrCodeValueOverflow ErrorCode = "VALUE_OVERFLOW"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Access errors
const (
	// ErrCodeForbidden indicates the request was rejected by an access policy.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
