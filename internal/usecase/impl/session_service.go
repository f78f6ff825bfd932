package impl

import (
	"context"
	"log/slog"
	"sync"

	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/repository"
	"agrodoctor/internal/domain/service"
	"agrodoctor/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var errMissingEmail = domainerrors.NewBaseError(domainerrors.KindValidation,
	"Please enter your registered email address.", "")

// sessionService implements the SessionUsecase interface. It is the single
// writer of both the credential store and the tagged session state.
type sessionService struct {
	backend  service.Backend
	creds    repository.CredentialStore
	logger   *slog.Logger
	validate *validator.Validate

	mu    sync.Mutex
	state entity.SessionState
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend service.Backend,
	creds repository.CredentialStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		backend:  backend,
		creds:    creds,
		logger:   logger,
		validate: newValidator(),
		state:    entity.Unauthenticated,
	}
}

func (srv *sessionService) State() entity.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// Bootstrap derives the launch state from the credential store. A persisted
// token is trusted without a validation round-trip; the first authenticated
// request either succeeds or surfaces a 401 to the active screen.
func (srv *sessionService) Bootstrap() entity.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok, err := srv.creds.Load(); err == nil && ok {
		srv.state = entity.Authenticated
	} else {
		srv.state = entity.Unauthenticated
	}
	srv.logger.Debug("session bootstrapped", slog.String("state", srv.state.String()))

	return srv.state
}

func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) error {
	if err := checkInput(srv.validate, input); err != nil {
		return err
	}

	token, err := srv.backend.Login(ctx, input.Username, input.Password)
	if err != nil {
		srv.logger.Debug("login rejected", slog.Any("error", err))

		return err
	}

	if err := srv.creds.Save(token); err != nil {
		return errors.Wrap(err, "save token")
	}

	srv.mu.Lock()
	srv.state = entity.Authenticated
	srv.mu.Unlock()

	srv.logger.Info("logged in", slog.String("username", input.Username))

	return nil
}

func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if err := checkInput(srv.validate, input); err != nil {
		return err
	}

	if err := srv.backend.Register(ctx, &service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}); err != nil {
		return err
	}

	srv.logger.Info("account created", slog.String("username", input.Username))

	return nil
}

func (srv *sessionService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return errors.WithStack(errMissingEmail)
	}

	return srv.backend.RequestPasswordReset(ctx, email)
}

func (srv *sessionService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := checkInput(srv.validate, input); err != nil {
		return err
	}

	return srv.backend.ResetPassword(ctx, input.Email, input.OTP, input.Password)
}

// Logout clears the credential store and replaces the state. It is
// idempotent: a second logout finds no token and succeeds the same way.
func (srv *sessionService) Logout(_ context.Context) error {
	if err := srv.creds.Clear(); err != nil {
		return errors.Wrap(err, "clear token")
	}

	srv.mu.Lock()
	srv.state = entity.Unauthenticated
	srv.mu.Unlock()

	srv.logger.Info("logged out")

	return nil
}
