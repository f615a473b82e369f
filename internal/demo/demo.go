// Package demo runs the worked examples against hardcoded sample records,
// narrating each step to a writer. The CLI and the interactive browser both
// drive demos through this package.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmercier/srplab/internal/config"
	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/invoice"
	"github.com/dmercier/srplab/internal/kitchen"
	"github.com/dmercier/srplab/internal/logging"
	"github.com/dmercier/srplab/internal/ui"
	"github.com/dmercier/srplab/internal/user"
	"github.com/dmercier/srplab/internal/user/monolith"
)

// Demos runs the example workflows against hardcoded sample records and
// writes their narrated output to a single writer.
type Demos struct {
	cfg        config.Config
	out        io.Writer
	logger     logging.Logger
	newSpinner func() Spinner
}

// DemoOption configures a Demos instance during construction.
type DemoOption func(*Demos)

// WithSpinner substitutes the spinner factory. Tests use this to silence
// the animation.
func WithSpinner(factory func() Spinner) DemoOption {
	return func(d *Demos) { d.newSpinner = factory }
}

// NewDemos creates the demo runner.
//
// Parameters:
//   - cfg: The resolved application configuration.
//   - out: The destination for demo output.
//   - logger: The logger shared by all collaborators.
//   - opts: Optional overrides.
//
// Returns:
//   - *Demos: The runner instance.
func NewDemos(cfg config.Config, out io.Writer, logger logging.Logger, opts ...DemoOption) *Demos {
	d := &Demos{
		cfg:        cfg,
		out:        out,
		logger:     logger,
		newSpinner: func() Spinner { return newSpinner() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// header prints a themed section header.
func (d *Demos) header(title string) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(d.out, "\n%s%s--- %s ---%s\n", theme.Bold, theme.Primary, title, theme.Reset)
}

// failure prints a themed error line. Expected failures in the demos go
// through here so they read as part of the narration, not as crashes.
func (d *Demos) failure(err error) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(d.out, "%sError: %v%s\n", theme.Error, err, theme.Reset)
}

// RunMonolith walks through the undecomposed user example: one struct
// that saves, validates, and formats, shown with a valid and an invalid
// record.
func (d *Demos) RunMonolith(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.header("Monolithic user (one struct, three reasons to change)")

	alice := monolith.User{ID: "u123", Name: "Alice Smith", Email: "alice@example.com"}
	if alice.IsValid(d.out) {
		alice.SaveToDatabase(d.out)
	}
	fmt.Fprintln(d.out, alice.FormatForDisplay())

	invalid := monolith.User{ID: "u125", Name: "", Email: "invalid"}
	if !invalid.IsValid(d.out) {
		fmt.Fprintln(d.out, "User u125 rejected; nothing saved.")
	}
	return nil
}

// RunUser walks through the decomposed user service: create two valid
// records, reject an invalid one, format details, and activate a user.
func (d *Demos) RunUser(ctx context.Context) error {
	d.header("Decomposed user service")

	svc := user.NewService(
		user.NewCacheStore(d.logger),
		user.NewRuleValidator(d.logger),
		user.NewTextPresenter(d.logger),
		user.WithLogger(d.logger),
	)

	if _, err := svc.Create(ctx, "u123", "Alice Wonderland", "alice@example.com"); err != nil {
		return err
	}
	if _, err := svc.Create(ctx, "u124", "Bob The Builder", "bob@example.net"); err != nil {
		return err
	}

	format, err := user.ParseFormat(d.cfg.User.Format)
	if err != nil {
		return err
	}
	details, err := svc.FormattedDetails(ctx, "u123", format)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, details)

	asJSON, err := svc.FormattedDetails(ctx, "u124", user.FormatJSON)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, asJSON)

	// The invalid record is rejected by the validator collaborator; the
	// repository never sees it.
	if _, err := svc.Create(ctx, "u125", "", "invalid"); err != nil {
		var validation apperrors.ValidationError
		if !errors.As(err, &validation) {
			return err
		}
		d.failure(err)
	}

	// Records are created active; activating again is an idempotent no-op.
	if _, err := svc.Activate(ctx, "u124"); err != nil {
		return err
	}
	details, err = svc.FormattedDetails(ctx, "u124", format)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, details)

	// Lookups for unknown identifiers surface as typed errors.
	if _, err := svc.FormattedDetails(ctx, "u999", format); err != nil {
		var notFound apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		d.failure(err)
	}
	return nil
}

// RunInvoice walks through the invoice pipeline: the configured sample
// amount is surcharged, rendered, and sent in the configured format, then
// again as PDF to a second destination, followed by the rejection of an
// unknown format tag.
func (d *Demos) RunInvoice(ctx context.Context) error {
	d.header("Invoice pipeline")

	manager := invoice.NewManager(
		invoice.NewSurchargeCalculator(d.logger),
		invoice.NewTextRenderer(d.logger),
		invoice.NewConsoleSender(d.out, d.logger),
		invoice.WithLogger(d.logger),
	)

	raw := invoice.Invoice{Amount: d.cfg.Invoice.SampleAmount}
	destination := d.cfg.Invoice.Destination

	format, err := invoice.ParseRenderFormat(d.cfg.Invoice.Format)
	if err != nil {
		return err
	}

	spin := d.newSpinner()
	spin.UpdateSuffix(" processing invoice...")
	spin.Start()
	err = manager.Process(ctx, raw, destination, format)
	spin.Stop()
	if err != nil {
		return err
	}

	if format != invoice.FormatPDF {
		if err := manager.Process(ctx, raw, "another."+destination, invoice.FormatPDF); err != nil {
			return err
		}
	}

	if _, err := invoice.ParseRenderFormat("DOCX"); err != nil {
		var unsupported apperrors.UnsupportedFormatError
		if !errors.As(err, &unsupported) {
			return err
		}
		d.failure(err)
	}
	return nil
}

// RunKitchen walks through the kitchen shift: three single-task workers
// sequenced by a manager that owns only the order of work.
func (d *Demos) RunKitchen(ctx context.Context) error {
	d.header("Kitchen shift")

	manager := kitchen.NewManager(
		kitchen.NewChef(d.out),
		kitchen.NewWaiter(d.out),
		kitchen.NewDishwasher(d.out),
		d.logger,
	)
	return manager.Run(ctx)
}

// RunAll executes every demo in teaching order: the monolithic
// counterexample first, then the decomposed designs.
func (d *Demos) RunAll(ctx context.Context) error {
	if err := d.RunMonolith(ctx); err != nil {
		return err
	}
	if err := d.RunUser(ctx); err != nil {
		return err
	}
	if err := d.RunInvoice(ctx); err != nil {
		return err
	}
	return d.RunKitchen(ctx)
}
