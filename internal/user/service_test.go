package user_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/dmercier/srplab/internal/errors"
	"github.com/dmercier/srplab/internal/logging"
	"github.com/dmercier/srplab/internal/user"
	"github.com/dmercier/srplab/internal/user/mocks"
)

func quietLogger() logging.Logger {
	return logging.NewLogger(io.Discard, "test")
}

func TestService_Create(t *testing.T) {
	t.Run("validates then saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		expected := user.User{ID: "u123", Name: "Alice Wonderland", Email: "alice@example.com", Active: true}

		gomock.InOrder(
			validator.EXPECT().Validate(expected).Return(nil),
			repo.EXPECT().Save(gomock.Any(), expected).Return(expected, nil),
		)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		got, err := svc.Create(context.Background(), "u123", "Alice Wonderland", "alice@example.com")
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if got != expected {
			t.Errorf("Create = %+v, want %+v", got, expected)
		}
		if !got.Active {
			t.Error("new users must be created active")
		}
	})

	t.Run("validation failure aborts before save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		validationErr := apperrors.NewValidationError("name", "user name cannot be blank")
		validator.EXPECT().Validate(gomock.Any()).Return(validationErr)
		// Save must never be called when validation fails.

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		_, err := svc.Create(context.Background(), "u125", "", "invalid")

		var gotErr apperrors.ValidationError
		if !errors.As(err, &gotErr) {
			t.Fatalf("Create = %v, want ValidationError", err)
		}
		if gotErr.Field != "name" {
			t.Errorf("failing field = %q, want %q", gotErr.Field, "name")
		}
	})

	t.Run("save failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		saveErr := errors.New("store unavailable")
		validator.EXPECT().Validate(gomock.Any()).Return(nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(user.User{}, saveErr)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		_, err := svc.Create(context.Background(), "u1", "Alice", "a@b.c")
		if !errors.Is(err, saveErr) {
			t.Errorf("Create = %v, want wrapped %v", err, saveErr)
		}
	})
}

func TestService_FormattedDetails(t *testing.T) {
	stored := user.User{ID: "u123", Name: "Alice Wonderland", Email: "alice@example.com", Active: true}

	t.Run("console format delegates to presenter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "u123").Return(stored, true, nil)
		presenter.EXPECT().FormatForConsole(stored).Return("rendered block")

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		got, err := svc.FormattedDetails(context.Background(), "u123", user.FormatConsole)
		if err != nil {
			t.Fatalf("FormattedDetails returned error: %v", err)
		}
		if got != "rendered block" {
			t.Errorf("FormattedDetails = %q", got)
		}
	})

	t.Run("json format delegates to presenter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "u123").Return(stored, true, nil)
		presenter.EXPECT().FormatForJSON(stored).Return(`{"id":"u123"}`, nil)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		got, err := svc.FormattedDetails(context.Background(), "u123", user.FormatJSON)
		if err != nil {
			t.Fatalf("FormattedDetails returned error: %v", err)
		}
		if got != `{"id":"u123"}` {
			t.Errorf("FormattedDetails = %q", got)
		}
	})

	t.Run("unknown id yields NotFoundError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "u404").Return(user.User{}, false, nil)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		_, err := svc.FormattedDetails(context.Background(), "u404", user.FormatConsole)

		var notFound apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("FormattedDetails = %v, want NotFoundError", err)
		}
		if notFound.ID != "u404" {
			t.Errorf("NotFoundError.ID = %q, want %q", notFound.ID, "u404")
		}
	})

	t.Run("out-of-range format yields UnsupportedFormatError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "u123").Return(stored, true, nil)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		_, err := svc.FormattedDetails(context.Background(), "u123", user.Format(99))

		var unsupported apperrors.UnsupportedFormatError
		if !errors.As(err, &unsupported) {
			t.Fatalf("FormattedDetails = %v, want UnsupportedFormatError", err)
		}
	})
}

func TestService_Activate(t *testing.T) {
	t.Run("marks fetched record active and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		inactive := user.User{ID: "u124", Name: "Bob The Builder", Email: "bob@example.net", Active: false}
		activated := inactive
		activated.Active = true

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "u124").Return(inactive, true, nil),
			repo.EXPECT().Save(gomock.Any(), activated).Return(activated, nil),
		)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		got, err := svc.Activate(context.Background(), "u124")
		if err != nil {
			t.Fatalf("Activate returned error: %v", err)
		}
		if !got.Active {
			t.Error("Activate should return an active record")
		}
	})

	t.Run("unknown id yields NotFoundError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockRepository(ctrl)
		validator := mocks.NewMockValidator(ctrl)
		presenter := mocks.NewMockPresenter(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(user.User{}, false, nil)

		svc := user.NewService(repo, validator, presenter, user.WithLogger(quietLogger()))
		_, err := svc.Activate(context.Background(), "ghost")

		var notFound apperrors.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Activate = %v, want NotFoundError", err)
		}
	})
}

// TestService_Lifecycle exercises the orchestrator against the real
// collaborators end to end.
func TestService_Lifecycle(t *testing.T) {
	t.Parallel()
	logger := quietLogger()
	svc := user.NewService(
		user.NewCacheStore(logger),
		user.NewRuleValidator(logger),
		user.NewTextPresenter(logger),
		user.WithLogger(logger),
	)
	ctx := context.Background()

	alice, err := svc.Create(ctx, "u123", "Alice Wonderland", "alice@example.com")
	if err != nil {
		t.Fatalf("Create(alice) returned error: %v", err)
	}
	if !alice.Active {
		t.Error("created user should be active")
	}

	if _, err := svc.Create(ctx, "u125", "", "invalid"); err == nil {
		t.Fatal("Create with blank name should fail")
	} else {
		var validationErr apperrors.ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "name" {
			t.Errorf("expected ValidationError citing blank name, got %v", err)
		}
	}

	details, err := svc.FormattedDetails(ctx, "u123", user.FormatConsole)
	if err != nil {
		t.Fatalf("FormattedDetails returned error: %v", err)
	}
	if details == "" {
		t.Error("FormattedDetails returned empty output")
	}

	// Activation is idempotent: both calls succeed and leave Active true.
	for i := 0; i < 2; i++ {
		updated, err := svc.Activate(ctx, "u123")
		if err != nil {
			t.Fatalf("Activate call %d returned error: %v", i+1, err)
		}
		if !updated.Active {
			t.Errorf("Activate call %d left user inactive", i+1)
		}
	}
}
