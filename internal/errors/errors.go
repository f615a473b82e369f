package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess          = 0   // Indicates successful execution.
	ExitErrorGeneric     = 1   // Indicates a generic error.
	ExitErrorValidation  = 2   // Indicates a record failed validation.
	ExitErrorNotFound    = 3   // Indicates a lookup for an unknown identifier.
	ExitErrorConfig      = 4   // Indicates a configuration error.
	ExitErrorUnsupported = 5   // Indicates an unsupported output format.
	ExitErrorCanceled    = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents a record field that failed validation. It
// identifies which field failed and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field with a
// formatted message.
//
// Parameters:
//   - field: The name of the field that failed validation.
//   - format: A format string for the failure description.
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// NotFoundError represents a lookup for an identifier that no repository
// holds. It captures the resource kind and the identifier so callers can
// report precisely what was missing.
type NotFoundError struct {
	// Resource is the kind of record that was looked up (e.g., "user").
	Resource string
	// ID is the identifier that was not found.
	ID string
}

// Error returns a formatted message describing the failed lookup.
//
// Returns:
//   - string: The error message string.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %q not found", e.Resource, e.ID)
}

// UnsupportedFormatError represents a request for an output format the
// presentation layer does not implement. It is deliberately distinct from
// NotFoundError: an unknown format tag and an unknown record identifier are
// different failures and must stay distinguishable to callers.
type UnsupportedFormatError struct {
	// Format is the format tag that was requested.
	Format string
}

// Error returns a formatted message naming the unsupported format.
//
// Returns:
//   - string: The error message string.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Format)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code that best describes
// it. Unrecognized errors map to the generic failure code.
//
// Parameters:
//   - err: The error to classify. May be nil.
//
// Returns:
//   - int: The exit code for the error, or ExitSuccess when err is nil.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	var (
		validationErr  ValidationError
		notFoundErr    NotFoundError
		unsupportedErr UnsupportedFormatError
		configErr      ConfigError
	)
	switch {
	case errors.As(err, &validationErr):
		return ExitErrorValidation
	case errors.As(err, &notFoundErr):
		return ExitErrorNotFound
	case errors.As(err, &unsupportedErr):
		return ExitErrorUnsupported
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
