// Package user implements the decomposed half of the user example: a pure
// data record plus single-purpose collaborators for persistence
// (Repository), validation (Validator), and presentation (Presenter),
// sequenced by a Service orchestrator.
//
// Each collaborator has exactly one reason to change. The Service depends
// on the capability interfaces rather than concrete types, so any
// collaborator can be substituted for testing via fakes or generated mocks
// (see the mocks subpackage).
//
// The monolith subpackage holds the deliberately undecomposed counterpart
// kept for contrast.
package user
