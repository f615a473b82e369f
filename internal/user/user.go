package user

// User is a pure data record. It carries no persistence, validation, or
// presentation behavior; those concerns live in the dedicated collaborators
// so that each has exactly one reason to change.
//
// The ID is the unique key and never changes after creation. Records are
// mutated only through Service-mediated operations.
type User struct {
	// ID uniquely identifies the user.
	ID string
	// Name is the display name. Must not be blank.
	Name string
	// Email is the contact address. Must contain both "@" and ".".
	Email string
	// Active reports whether the account is active.
	Active bool
}
