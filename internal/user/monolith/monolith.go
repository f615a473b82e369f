// Package monolith holds the deliberately undecomposed user example kept
// for contrast with the user package. The User type here mixes persistence,
// validation, and presentation into one struct, giving it three unrelated
// reasons to change. It exists to be run side by side with the decomposed
// Service in the demo; nothing else should depend on it.
package monolith

import (
	"fmt"
	"io"
	"strings"
)

// User carries its data and every behavior attached to it: saving,
// validating, and formatting. Each method would change for a different
// reason, which is exactly the problem the decomposed variant fixes.
type User struct {
	ID     string
	Name   string
	Email  string
	Active bool
}

// SaveToDatabase simulates persisting the record, writing progress to w.
// This method changes whenever the storage mechanism or schema changes.
func (u User) SaveToDatabase(w io.Writer) {
	fmt.Fprintf(w, "User: Saving user %s (%s) to database...\n", u.Name, u.ID)
	fmt.Fprintln(w, "User: User saved to DB successfully.")
}

// IsValid checks the record against the validation rules, writing failures
// to w. This method changes whenever the business rules for a valid user
// change.
func (u User) IsValid(w io.Writer) bool {
	fmt.Fprintf(w, "User: Validating user %s (%s)...\n", u.Name, u.ID)
	if strings.TrimSpace(u.Name) == "" {
		fmt.Fprintln(w, "Validation failed: Name cannot be blank.")
		return false
	}
	if !strings.Contains(u.Email, "@") || !strings.Contains(u.Email, ".") {
		fmt.Fprintln(w, "Validation failed: Invalid email format.")
		return false
	}
	fmt.Fprintln(w, "User: Validation successful.")
	return true
}

// FormatForDisplay renders the record as a text block. This method changes
// whenever the display requirements change.
func (u User) FormatForDisplay() string {
	status := "Inactive"
	if u.Active {
		status = "Active"
	}
	return fmt.Sprintf("User ID: %s\nName: %s\nEmail: %s\nStatus: %s", u.ID, u.Name, u.Email, status)
}
