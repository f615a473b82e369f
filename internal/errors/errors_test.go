// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--format"),
			expected: "invalid value 42 for flag --format",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error names the failing field",
			err:      ValidationError{Field: "name", Message: "cannot be blank"},
			expected: `validation error for "name": cannot be blank`,
		},
		{
			name:     "NewValidationError creates formatted error",
			err:      NewValidationError("email", "invalid email format for %q", "bob"),
			expected: `validation error for "email": invalid email format for "bob"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var validationErr ValidationError
			if !errors.As(tt.err, &validationErr) {
				t.Error("expected error to be ValidationError type")
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()
	err := NotFoundError{Resource: "user", ID: "u404"}
	expected := `user with ID "u404" not found`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	wrapped := WrapError(err, "fetching details")
	var notFoundErr NotFoundError
	if !errors.As(wrapped, &notFoundErr) {
		t.Error("errors.As should find NotFoundError through the wrap")
	}
	if notFoundErr.ID != "u404" {
		t.Errorf("expected ID %q, got %q", "u404", notFoundErr.ID)
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Parallel()
	err := UnsupportedFormatError{Format: "xml"}
	expected := `unsupported format: "xml"`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	// The two lookup-style failures must remain distinguishable.
	var notFoundErr NotFoundError
	if errors.As(err, &notFoundErr) {
		t.Error("UnsupportedFormatError must not satisfy NotFoundError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		base := errors.New("base failure")
		wrapped := WrapError(base, "processing record %s", "u123")
		expected := "processing record u123: base failure"
		if wrapped.Error() != expected {
			t.Errorf("expected %q, got %q", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, base) {
			t.Error("errors.Is should find the base error in the chain")
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil, ...) should return nil")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped cancellation", WrapError(context.Canceled, "demo aborted"), true},
		{"ordinary error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"validation error", NewValidationError("name", "cannot be blank"), ExitErrorValidation},
		{"not found error", NotFoundError{Resource: "user", ID: "u1"}, ExitErrorNotFound},
		{"unsupported format error", UnsupportedFormatError{Format: "yaml"}, ExitErrorUnsupported},
		{"config error", NewConfigError("bad flag"), ExitErrorConfig},
		{"wrapped not found", WrapError(NotFoundError{Resource: "user", ID: "u2"}, "activating"), ExitErrorNotFound},
		{"cancellation", context.Canceled, ExitErrorCanceled},
		{"generic error", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
