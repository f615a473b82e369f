package user

import (
	"strings"

	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/logging"
)

// RuleValidator validates user records against the two business rules the
// domain defines: the name must not be blank, and the email must contain
// both "@" and ".". Checks run name-then-email and the first failure
// short-circuits.
type RuleValidator struct {
	logger logging.Logger
}

// Compile-time check that RuleValidator implements Validator.
var _ Validator = RuleValidator{}

// NewRuleValidator creates a RuleValidator logging through the given logger.
func NewRuleValidator(logger logging.Logger) RuleValidator {
	return RuleValidator{logger: logger}
}

// Validate checks the record and returns an apperrors.ValidationError for
// the first rule that fails, or nil when the record is valid.
func (v RuleValidator) Validate(u User) error {
	v.logger.Debug("validating user",
		logging.String("id", u.ID),
		logging.String("name", u.Name))

	if strings.TrimSpace(u.Name) == "" {
		return apperrors.NewValidationError("name", "user name cannot be blank")
	}
	if !strings.Contains(u.Email, "@") || !strings.Contains(u.Email, ".") {
		return apperrors.NewValidationError("email", "invalid email format for %q", u.Email)
	}

	v.logger.Debug("validation successful", logging.String("id", u.ID))
	return nil
}
