package user

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/logging"
)

// TextPresenter formats user records for display. Both methods are pure
// functions of the input record; format selection happens in the
// orchestrator, not here.
type TextPresenter struct {
	logger logging.Logger
}

// Compile-time check that TextPresenter implements Presenter.
var _ Presenter = TextPresenter{}

// NewTextPresenter creates a TextPresenter logging through the given logger.
func NewTextPresenter(logger logging.Logger) TextPresenter {
	return TextPresenter{logger: logger}
}

// FormatForConsole renders the record as a fixed-layout text block:
//
//	User ID: <id>
//	Name: <name>
//	Email: <email>
//	Status: Active|Inactive
func (p TextPresenter) FormatForConsole(u User) string {
	p.logger.Debug("formatting user for console", logging.String("id", u.ID))
	status := "Inactive"
	if u.Active {
		status = "Active"
	}
	return fmt.Sprintf("User ID: %s\nName: %s\nEmail: %s\nStatus: %s", u.ID, u.Name, u.Email, status)
}

// FormatForJSON renders the record as an indented JSON object with the keys
// id, name, email, and active.
func (p TextPresenter) FormatForJSON(u User) (string, error) {
	p.logger.Debug("formatting user for JSON", logging.String("id", u.ID))
	payload := struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Active bool   `json:"active"`
	}{u.ID, u.Name, u.Email, u.Active}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", apperrors.WrapError(err, "encoding user %s", u.ID)
	}
	return string(data), nil
}
