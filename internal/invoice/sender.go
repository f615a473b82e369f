package invoice

import (
	"context"
	"fmt"
	"io"

	"github.com/dmercier/srplab/internal/logging"
)

// ConsoleSender delivers rendered invoices by writing a confirmation to an
// io.Writer. No real transport is involved and no failure path is modeled;
// swapping in an email or SMS sender changes this type and nothing else.
type ConsoleSender struct {
	out    io.Writer
	logger logging.Logger
}

// Compile-time check that ConsoleSender implements Sender.
var _ Sender = ConsoleSender{}

// NewConsoleSender creates a ConsoleSender writing confirmations to out.
func NewConsoleSender(out io.Writer, logger logging.Logger) ConsoleSender {
	return ConsoleSender{out: out, logger: logger}
}

// Send writes the delivery confirmation for the rendered invoice.
func (s ConsoleSender) Send(ctx context.Context, rendered Rendered, destination string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("sending invoice",
		logging.String("format", rendered.Format.String()),
		logging.String("destination", destination))
	fmt.Fprintf(s.out, "Sending %s invoice to %s.\n", rendered.Format, destination)
	fmt.Fprintf(s.out, "Content sent: %q\n", rendered.Content)
	return nil
}
