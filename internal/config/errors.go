package config

import (
	"errors"
	"fmt"
)

// Validation error codes.
const (
	ErrCodeIterationsOutOfRange = "ITERATIONS_OUT_OF_RANGE"
	ErrCodeBinsOutOfRange       = "BINS_OUT_OF_RANGE"
	ErrCodeParseFailed          = "PARSE_FAILED"
	ErrCodeSchemaViolation      = "SCHEMA_VIOLATION"
	ErrCodeUnknownFormat        = "UNKNOWN_FORMAT"
)

// ValidationError reports a configuration that must not be sampled.
type ValidationError struct {
	Code    string
	Field   string // config field, empty for file-level errors
	Message string
	Err     error // underlying error (optional)
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorCode returns the ValidationError code in err's chain, or "".
func ErrorCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
