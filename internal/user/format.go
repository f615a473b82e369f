package user

import (
	"strings"

	apperrors "github.com/dmercier/srplab/internal/errors"
)

// Format is the closed set of output representations the presentation layer
// supports. Dispatching on a typed enum instead of a raw string tag keeps
// the switch in FormattedDetails exhaustive, with a single explicit
// unsupported arm.
type Format int

const (
	// FormatConsole renders a fixed-layout multi-line text block.
	FormatConsole Format = iota
	// FormatJSON renders a JSON object literal.
	FormatJSON
)

// String returns the canonical tag for the format.
func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a user-supplied tag into a Format. Matching is
// case-insensitive. Unrecognized tags produce an
// apperrors.UnsupportedFormatError.
//
// Parameters:
//   - tag: The format tag to parse (e.g., "console", "json").
//
// Returns:
//   - Format: The parsed format.
//   - error: An UnsupportedFormatError when the tag is unrecognized.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(tag) {
	case "console":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, apperrors.UnsupportedFormatError{Format: tag}
	}
}
