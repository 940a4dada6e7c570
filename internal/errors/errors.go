package errors

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	// ValidationError represents input validation failures
	ValidationError ErrorType = "validation"
	// FormatError represents bounded-formatting failures (truncation, bad template)
	FormatError ErrorType = "format"
	// TimeError represents local-time resolution or formatting errors
	TimeError ErrorType = "time"
	// LookupError represents platform error-code lookup failures
	LookupError ErrorType = "lookup"
	// ConfigError represents configuration-related errors
	ConfigError ErrorType = "config"
)

// BaseError is the base error type for all cbase errors
type BaseError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *BaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new BaseError
func New(errorType ErrorType, message string) *BaseError {
	return &BaseError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap creates a new BaseError that wraps another error
func Wrap(errorType ErrorType, message string, cause error) *BaseError {
	return &BaseError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Convenience constructors for common error types

func NewValidationError(message string) *BaseError {
	return New(ValidationError, message)
}

func WrapValidationError(message string, cause error) *BaseError {
	return Wrap(ValidationError, message, cause)
}

func NewFormatError(message string) *BaseError {
	return New(FormatError, message)
}

func WrapFormatError(message string, cause error) *BaseError {
	return Wrap(FormatError, message, cause)
}

func NewTimeError(message string) *BaseError {
	return New(TimeError, message)
}

func WrapTimeError(message string, cause error) *BaseError {
	return Wrap(TimeError, message, cause)
}

func NewLookupError(message string) *BaseError {
	return New(LookupError, message)
}

func WrapLookupError(message string, cause error) *BaseError {
	return Wrap(LookupError, message, cause)
}

func NewConfigError(message string) *BaseError {
	return New(ConfigError, message)
}

func WrapConfigError(message string, cause error) *BaseError {
	return Wrap(ConfigError, message, cause)
}
