// Package metrics exposes Prometheus counters for the demo workflows.
// A Recorder is constructed against a caller-supplied registry so tests can
// inspect counters in isolation without touching global state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the counters incremented by the orchestrators.
type Recorder struct {
	// UsersCreated counts successful user creations.
	UsersCreated prometheus.Counter
	// UsersActivated counts successful user activations.
	UsersActivated prometheus.Counter
	// ValidationFailures counts records rejected by a validator.
	ValidationFailures prometheus.Counter
	// InvoicesProcessed counts processed invoices, labeled by render format.
	InvoicesProcessed *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all counters registered on reg.
//
// Parameters:
//   - reg: The Prometheus registerer to attach the counters to.
//
// Returns:
//   - *Recorder: The recorder instance.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "srplab_users_created_total",
			Help: "Number of users successfully created.",
		}),
		UsersActivated: factory.NewCounter(prometheus.CounterOpts{
			Name: "srplab_users_activated_total",
			Help: "Number of users successfully activated.",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "srplab_validation_failures_total",
			Help: "Number of records rejected by validation.",
		}),
		InvoicesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "srplab_invoices_processed_total",
			Help: "Number of invoices processed, by render format.",
		}, []string{"format"}),
	}
}

// NewNopRecorder creates a Recorder backed by a private registry.
// Useful as a default when the caller does not care about metrics.
//
// Returns:
//   - *Recorder: The recorder instance.
func NewNopRecorder() *Recorder {
	return NewRecorder(prometheus.NewRegistry())
}
