package invoice

import (
	"math"

	"github.com/dmercier/srplab/internal/logging"
)

// SurchargeRate is the fixed multiplicative surcharge applied to every
// invoice amount.
const SurchargeRate = 0.10

// SurchargeCalculator applies the fixed surcharge to an invoice amount.
// The transform is pure and deterministic: a new Invoice is returned and
// the input is untouched. Results are rounded to cents so that a 100.00
// amount derives exactly 110.00.
type SurchargeCalculator struct {
	logger logging.Logger
}

// Compile-time check that SurchargeCalculator implements Calculator.
var _ Calculator = SurchargeCalculator{}

// NewSurchargeCalculator creates a SurchargeCalculator logging through the
// given logger.
func NewSurchargeCalculator(logger logging.Logger) SurchargeCalculator {
	return SurchargeCalculator{logger: logger}
}

// Calculate returns a new Invoice with the surcharge applied.
func (c SurchargeCalculator) Calculate(raw Invoice) Invoice {
	derived := Invoice{
		Amount: math.Round(raw.Amount*(1+SurchargeRate)*100) / 100,
	}
	c.logger.Debug("calculated invoice amount",
		logging.Float64("raw", raw.Amount),
		logging.Float64("derived", derived.Amount))
	return derived
}
