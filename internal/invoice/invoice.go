package invoice

import (
	"strings"

	apperrors "github.com/dmercier/srplab/internal/errors"
)

// Invoice is the raw billing data the pipeline operates on. Calculation is
// a pure transform: it produces a new derived Invoice and never mutates its
// input.
type Invoice struct {
	// Amount is the invoice total in currency units.
	Amount float64
}

// Rendered is an invoice rendered into a concrete output representation.
// It is produced by a Renderer, consumed once by a Sender, and then
// discarded; rendered invoices are never persisted.
type Rendered struct {
	// Content is the rendered payload.
	Content string
	// Format is the representation the content was rendered into.
	Format RenderFormat
}

// RenderFormat is the closed set of representations a Renderer supports.
type RenderFormat int

const (
	// FormatHTML renders the invoice as HTML.
	FormatHTML RenderFormat = iota
	// FormatPDF renders the invoice as PDF.
	FormatPDF
	// FormatCSV renders the invoice as CSV.
	FormatCSV
)

// String returns the canonical tag for the format.
func (f RenderFormat) String() string {
	switch f {
	case FormatHTML:
		return "HTML"
	case FormatPDF:
		return "PDF"
	case FormatCSV:
		return "CSV"
	default:
		return "unknown"
	}
}

// ParseRenderFormat converts a user-supplied tag into a RenderFormat.
// Matching is case-insensitive. Unrecognized tags produce an
// apperrors.UnsupportedFormatError.
func ParseRenderFormat(tag string) (RenderFormat, error) {
	switch strings.ToUpper(tag) {
	case "HTML":
		return FormatHTML, nil
	case "PDF":
		return FormatPDF, nil
	case "CSV":
		return FormatCSV, nil
	default:
		return 0, apperrors.UnsupportedFormatError{Format: tag}
	}
}
