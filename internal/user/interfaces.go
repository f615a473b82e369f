//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package user

import "context"

// Repository defines the persistence contract for user records.
// This interface decouples the orchestration layer from the storage
// mechanism: swapping the in-memory store for a database changes the
// Repository implementation and nothing else.
type Repository interface {
	// Save stores the record keyed by its ID and returns the stored value.
	// Saving an existing ID overwrites the prior record (last write wins).
	Save(ctx context.Context, u User) (User, error)

	// GetByID retrieves the record for the given ID. The boolean reports
	// whether a record was found; a miss is not an error, the caller
	// decides how to treat it.
	GetByID(ctx context.Context, id string) (User, bool, error)
}

// Validator defines the validation contract for user records.
// Implementations change only when the business rules defining a valid
// user change.
type Validator interface {
	// Validate returns nil when the record satisfies every rule, or an
	// apperrors.ValidationError describing the first rule that failed.
	Validate(u User) error
}

// ValidatorFunc is a function adapter that implements Validator.
// This allows passing a function directly where a Validator is expected.
type ValidatorFunc func(User) error

// Validate calls the underlying function.
func (f ValidatorFunc) Validate(u User) error { return f(u) }

// Presenter defines the presentation contract for user records.
// Implementations change only when display requirements change.
type Presenter interface {
	// FormatForConsole renders the record as a fixed-layout multi-line
	// text block.
	FormatForConsole(u User) string

	// FormatForJSON renders the record as a JSON object with the keys
	// id, name, email, and active.
	FormatForJSON(u User) (string, error)
}
