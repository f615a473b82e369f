package user

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/logging"
	"github.com/dmercier/srplab/internal/metrics"
)

// tracerName identifies the user workflows to the tracer provider.
const tracerName = "srplab/user"

// Service orchestrates the user lifecycle by sequencing calls to its
// collaborators. It performs none of the work itself: validation, storage,
// and presentation are delegated, so the Service changes only when the
// high-level workflow changes.
type Service struct {
	repo      Repository
	validator Validator
	presenter Presenter
	logger    logging.Logger
	metrics   *metrics.Recorder
	tracer    trace.Tracer
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithLogger sets the logger used by the Service.
func WithLogger(logger logging.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics recorder used by the Service.
func WithMetrics(rec *metrics.Recorder) ServiceOption {
	return func(s *Service) { s.metrics = rec }
}

// NewService creates a Service over the given collaborators.
//
// Parameters:
//   - repo: The repository that owns the stored records.
//   - validator: The validator applied before any save.
//   - presenter: The presenter used for formatted output.
//   - opts: Optional logger and metrics configuration.
//
// Returns:
//   - *Service: The orchestrator instance.
func NewService(repo Repository, validator Validator, presenter Presenter, opts ...ServiceOption) *Service {
	s := &Service{
		repo:      repo,
		validator: validator,
		presenter: presenter,
		logger:    logging.NewDefaultLogger(),
		metrics:   metrics.NewNopRecorder(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a new active user record, validates it, and saves it.
// The first failing step aborts the workflow and its error propagates to
// the caller unchanged in kind.
//
// Parameters:
//   - ctx: The context for the workflow.
//   - id: The unique identifier for the new record.
//   - name: The display name.
//   - email: The contact address.
//
// Returns:
//   - User: The saved record, Active set to true.
//   - error: A ValidationError when a field is invalid, or a storage error.
func (s *Service) Create(ctx context.Context, id, name, email string) (User, error) {
	ctx, span := s.tracer.Start(ctx, "user.create",
		trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	newUser := User{ID: id, Name: name, Email: email, Active: true}

	if err := s.validator.Validate(newUser); err != nil {
		s.metrics.ValidationFailures.Inc()
		s.logger.Error("user validation failed", err, logging.String("id", id))
		return User{}, err
	}

	saved, err := s.repo.Save(ctx, newUser)
	if err != nil {
		return User{}, apperrors.WrapError(err, "creating user %s", id)
	}

	s.metrics.UsersCreated.Inc()
	s.logger.Info("user created",
		logging.String("id", saved.ID),
		logging.String("name", saved.Name))
	return saved, nil
}

// FormattedDetails fetches the record for id and renders it in the
// requested format.
//
// Parameters:
//   - ctx: The context for the workflow.
//   - id: The identifier to look up.
//   - format: The output representation to render.
//
// Returns:
//   - string: The rendered record.
//   - error: A NotFoundError for an unknown id, an UnsupportedFormatError
//     for a format outside the closed set, or a storage error.
func (s *Service) FormattedDetails(ctx context.Context, id string, format Format) (string, error) {
	ctx, span := s.tracer.Start(ctx, "user.formatted_details",
		trace.WithAttributes(
			attribute.String("user.id", id),
			attribute.String("user.format", format.String())))
	defer span.End()

	u, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", apperrors.WrapError(err, "fetching user %s", id)
	}
	if !found {
		return "", apperrors.NotFoundError{Resource: "user", ID: id}
	}

	switch format {
	case FormatConsole:
		return s.presenter.FormatForConsole(u), nil
	case FormatJSON:
		return s.presenter.FormatForJSON(u)
	default:
		return "", apperrors.UnsupportedFormatError{Format: format.String()}
	}
}

// Activate fetches the record for id, marks it active, and saves it.
// Activating an already-active user succeeds and leaves the record active,
// so the operation is idempotent.
//
// Parameters:
//   - ctx: The context for the workflow.
//   - id: The identifier to activate.
//
// Returns:
//   - User: The updated record.
//   - error: A NotFoundError for an unknown id, or a storage error.
func (s *Service) Activate(ctx context.Context, id string) (User, error) {
	ctx, span := s.tracer.Start(ctx, "user.activate",
		trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	u, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, apperrors.WrapError(err, "fetching user %s", id)
	}
	if !found {
		return User{}, apperrors.NotFoundError{Resource: "user", ID: id}
	}

	u.Active = true
	updated, err := s.repo.Save(ctx, u)
	if err != nil {
		return User{}, apperrors.WrapError(err, "activating user %s", id)
	}

	s.metrics.UsersActivated.Inc()
	s.logger.Info("user activated", logging.String("id", updated.ID))
	return updated, nil
}
