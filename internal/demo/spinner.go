//go:generate mockgen -source=spinner.go -destination=mocks/mock_spinner.go -package=mocks

package demo

import (
	"time"

	"github.com/briandowns/spinner"
)

// spinnerRefreshRate defines the animation interval of the send spinner.
const spinnerRefreshRate = 150 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner so the demos can be
// tested without animating a real one.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner builds the default terminal spinner. Declared as a variable so
// tests can substitute a silent implementation.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], spinnerRefreshRate, options...)
	return &realSpinner{s}
}

// NopSpinner is a Spinner that does nothing. The interactive browser and
// tests use it to keep the animation out of captured output.
var NopSpinner Spinner = nopSpinner{}

type nopSpinner struct{}

func (nopSpinner) Start() {}

func (nopSpinner) Stop() {}

func (nopSpinner) UpdateSuffix(string) {}
