package invoice

import (
	"fmt"

	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/logging"
)

// TextRenderer renders invoices into the supported output representations.
// The rendered content is a plain-text stand-in; a production renderer
// would swap in an HTML template or a PDF library without touching the
// rest of the pipeline.
type TextRenderer struct {
	logger logging.Logger
}

// Compile-time check that TextRenderer implements Renderer.
var _ Renderer = TextRenderer{}

// NewTextRenderer creates a TextRenderer logging through the given logger.
func NewTextRenderer(logger logging.Logger) TextRenderer {
	return TextRenderer{logger: logger}
}

// Render produces the representation of the invoice in the given format.
// The format switch is exhaustive over the closed RenderFormat set;
// out-of-range values hit the explicit unsupported arm.
func (r TextRenderer) Render(data Invoice, format RenderFormat) (Rendered, error) {
	switch format {
	case FormatHTML, FormatPDF, FormatCSV:
		r.logger.Debug("rendering invoice",
			logging.Float64("amount", data.Amount),
			logging.String("format", format.String()))
		content := fmt.Sprintf("Rendered content for amount: %.2f in %s", data.Amount, format)
		return Rendered{Content: content, Format: format}, nil
	default:
		return Rendered{}, apperrors.UnsupportedFormatError{Format: format.String()}
	}
}
