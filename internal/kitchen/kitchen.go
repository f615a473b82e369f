// Package kitchen holds the smallest of the responsibility-splitting
// examples: a restaurant staffed by single-task workers. The Chef cooks,
// the Waiter serves, the Dishwasher cleans, and the Manager only decides
// the order of the shift. None of the workers knows about any other.
package kitchen

import (
	"context"
	"fmt"
	"io"

	"github.com/dmercier/srplab/internal/logging"
)

// Chef prepares food. That is the whole job.
type Chef struct {
	out io.Writer
}

// NewChef creates a Chef writing its work log to out.
func NewChef(out io.Writer) Chef {
	return Chef{out: out}
}

// PrepareFood performs the cooking step of a shift.
func (c Chef) PrepareFood() {
	fmt.Fprintln(c.out, "Chef: preparing food.")
}

// Waiter serves customers.
type Waiter struct {
	out io.Writer
}

// NewWaiter creates a Waiter writing its work log to out.
func NewWaiter(out io.Writer) Waiter {
	return Waiter{out: out}
}

// ServeCustomers performs the serving step of a shift.
func (w Waiter) ServeCustomers() {
	fmt.Fprintln(w.out, "Waiter: serving customers.")
}

// Dishwasher washes dishes.
type Dishwasher struct {
	out io.Writer
}

// NewDishwasher creates a Dishwasher writing its work log to out.
func NewDishwasher(out io.Writer) Dishwasher {
	return Dishwasher{out: out}
}

// WashDishes performs the cleanup step of a shift.
func (d Dishwasher) WashDishes() {
	fmt.Fprintln(d.out, "Dishwasher: washing dishes.")
}

// Manager sequences one shift: food is prepared, customers are served,
// dishes are washed. The Manager owns the order of work and nothing else;
// how each step is done belongs to the worker performing it.
type Manager struct {
	chef       Chef
	waiter     Waiter
	dishwasher Dishwasher
	logger     logging.Logger
}

// NewManager creates a Manager over the given staff.
//
// Parameters:
//   - chef: The cooking worker.
//   - waiter: The serving worker.
//   - dishwasher: The cleanup worker.
//   - logger: The logger for shift events.
//
// Returns:
//   - *Manager: The shift coordinator.
func NewManager(chef Chef, waiter Waiter, dishwasher Dishwasher, logger logging.Logger) *Manager {
	return &Manager{
		chef:       chef,
		waiter:     waiter,
		dishwasher: dishwasher,
		logger:     logger,
	}
}

// Run executes one shift in fixed order. A canceled context aborts the
// shift before any work starts.
func (m *Manager) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Info("shift starting")

	m.chef.PrepareFood()
	m.waiter.ServeCustomers()
	m.dishwasher.WashDishes()

	m.logger.Info("shift finished")
	return nil
}
