// Package usecase declares the application-level contracts between the
// screens and the business rules. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"agrodoctor/internal/domain/entity"
)

// LoginInput carries the login form.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// ResetPasswordInput carries the second step of the password-reset flow.
// The email travels forward from the forgot-password step; nothing else is
// retained between the two steps.
type ResetPasswordInput struct {
	Email           string `validate:"required,email"`
	OTP             string `validate:"required"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// SessionUsecase is the explicit state machine behind authentication. Only
// Login and Logout transition the state; everything else observes it.
type SessionUsecase interface {
	// State reports the current tagged state.
	State() entity.SessionState

	// Bootstrap derives the launch state from a previously saved token.
	// The token is not validated proactively; the first authenticated
	// request settles its fate.
	Bootstrap() entity.SessionState

	// Login validates the form locally, exchanges credentials for a token
	// and saves it. On success the session is Authenticated.
	Login(ctx context.Context, input *LoginInput) error

	// Register validates the form locally and creates the account. It does
	// not log in; the flow returns to the login screen.
	Register(ctx context.Context, input *RegisterInput) error

	// RequestPasswordReset starts the two-step reset flow.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword finalizes the reset. Mismatched passwords are rejected
	// locally before any request is sent.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// Logout clears the credential store and returns the session to
	// Unauthenticated. Logging out twice is not an error.
	Logout(ctx context.Context) error
}
