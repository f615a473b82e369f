// Package invoice implements the invoice-processing example: a raw amount
// is derived by a Calculator, rendered by a Renderer into one of a closed
// set of formats, and delivered by a Sender, with a Manager sequencing the
// three steps. Every collaborator sits behind a capability interface so it
// can be substituted independently.
package invoice
