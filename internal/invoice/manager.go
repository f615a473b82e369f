package invoice

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/logging"
	"github.com/dmercier/srplab/internal/metrics"
)

// tracerName identifies the invoice workflow to the tracer provider.
const tracerName = "srplab/invoice"

// Manager coordinates the invoice pipeline: calculate, render, send.
// Each step is delegated to a single-purpose collaborator; the Manager
// changes only when the overall process flow changes.
type Manager struct {
	calculator Calculator
	renderer   Renderer
	sender     Sender
	logger     logging.Logger
	metrics    *metrics.Recorder
	tracer     trace.Tracer
}

// ManagerOption configures a Manager during construction.
type ManagerOption func(*Manager)

// WithLogger sets the logger used by the Manager.
func WithLogger(logger logging.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// WithMetrics sets the metrics recorder used by the Manager.
func WithMetrics(rec *metrics.Recorder) ManagerOption {
	return func(m *Manager) { m.metrics = rec }
}

// NewManager creates a Manager over the given collaborators.
//
// Parameters:
//   - calculator: The amount-derivation step.
//   - renderer: The rendering step.
//   - sender: The delivery step.
//   - opts: Optional logger and metrics configuration.
//
// Returns:
//   - *Manager: The orchestrator instance.
func NewManager(calculator Calculator, renderer Renderer, sender Sender, opts ...ManagerOption) *Manager {
	m := &Manager{
		calculator: calculator,
		renderer:   renderer,
		sender:     sender,
		logger:     logging.NewDefaultLogger(),
		metrics:    metrics.NewNopRecorder(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Process runs the full pipeline for one invoice: calculate the final
// amount, render it in the requested format, and send the result to the
// destination. The workflow is purely effectful; the first failing step
// aborts it and the error propagates to the caller.
//
// Parameters:
//   - ctx: The context for the workflow.
//   - raw: The raw invoice data.
//   - destination: The delivery address for the rendered invoice.
//   - format: The representation to render.
//
// Returns:
//   - error: An UnsupportedFormatError for a format outside the closed
//     set, or any error from the send step.
func (m *Manager) Process(ctx context.Context, raw Invoice, destination string, format RenderFormat) error {
	runID := uuid.NewString()
	ctx, span := m.tracer.Start(ctx, "invoice.process",
		trace.WithAttributes(
			attribute.String("invoice.run_id", runID),
			attribute.String("invoice.format", format.String())))
	defer span.End()

	m.logger.Info("processing invoice",
		logging.String("run_id", runID),
		logging.String("destination", destination),
		logging.Float64("amount", raw.Amount))

	calculated := m.calculator.Calculate(raw)

	rendered, err := m.renderer.Render(calculated, format)
	if err != nil {
		return apperrors.WrapError(err, "rendering invoice %s", runID)
	}

	if err := m.sender.Send(ctx, rendered, destination); err != nil {
		return apperrors.WrapError(err, "sending invoice %s", runID)
	}

	m.metrics.InvoicesProcessed.WithLabelValues(format.String()).Inc()
	m.logger.Info("invoice processing finished", logging.String("run_id", runID))
	return nil
}
