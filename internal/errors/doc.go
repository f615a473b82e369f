// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (validation,
// missing records, unsupported formats, configuration) and for mapping
// each class to a stable process exit code.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Callers should inspect error classes with errors.Is() and errors.As()
// rather than comparing message strings.
package apperrors
