package invoice

import "context"

// Calculator defines the amount-derivation contract for the pipeline.
// Implementations change only when tax or discount rules change.
type Calculator interface {
	// Calculate returns a new Invoice derived from raw with all charges
	// applied. The input is never mutated.
	Calculate(raw Invoice) Invoice
}

// CalculatorFunc is a function adapter that implements Calculator.
type CalculatorFunc func(Invoice) Invoice

// Calculate calls the underlying function.
func (f CalculatorFunc) Calculate(raw Invoice) Invoice { return f(raw) }

// Renderer defines the rendering contract for the pipeline.
// Implementations change only when the details of an output representation
// change.
type Renderer interface {
	// Render produces the representation of the invoice in the given
	// format. Formats outside the closed set yield an
	// apperrors.UnsupportedFormatError.
	Render(data Invoice, format RenderFormat) (Rendered, error)
}

// Sender defines the delivery contract for the pipeline.
// Implementations change only when the delivery mechanism changes.
type Sender interface {
	// Send delivers the rendered invoice to the destination. There is no
	// retry; a failure propagates to the caller.
	Send(ctx context.Context, rendered Rendered, destination string) error
}
