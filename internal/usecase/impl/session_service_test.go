package impl

import (
	"context"
	"testing"

	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/service"
	"agrodoctor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_LoginStoresTokenAndAuthenticates(t *testing.T) {
	backend := &fakeBackend{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			assert.Equal(t, "farmer1", username)
			assert.Equal(t, "secret", password)

			return "abc123", nil
		},
	}
	creds := &fakeCreds{}
	srv := NewSessionService(backend, creds, testLogger(t))

	err := srv.Login(context.Background(), &usecase.LoginInput{Username: "farmer1", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "abc123", creds.token)
	assert.Equal(t, entity.Authenticated, srv.State())
}

func TestSessionService_LoginMissingFieldsSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	srv := NewSessionService(backend, &fakeCreds{}, testLogger(t))

	err := srv.Login(context.Background(), &usecase.LoginInput{Username: "farmer1"})
	require.Error(t, err)

	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.Zero(t, backend.calls)
	assert.Equal(t, entity.Unauthenticated, srv.State())
}

func TestSessionService_LoginRejectionLeavesUnauthenticated(t *testing.T) {
	backend := &fakeBackend{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domainerrors.NewServerError(401, "Incorrect username or password")
		},
	}
	creds := &fakeCreds{}
	srv := NewSessionService(backend, creds, testLogger(t))

	err := srv.Login(context.Background(), &usecase.LoginInput{Username: "farmer1", Password: "wrong"})
	require.Error(t, err)

	assert.Empty(t, creds.token)
	assert.Equal(t, entity.Unauthenticated, srv.State())
}

func TestSessionService_BootstrapFromPersistedToken(t *testing.T) {
	srv := NewSessionService(&fakeBackend{}, &fakeCreds{token: "persisted"}, testLogger(t))

	assert.Equal(t, entity.Authenticated, srv.Bootstrap())
}

func TestSessionService_BootstrapWithoutToken(t *testing.T) {
	srv := NewSessionService(&fakeBackend{}, &fakeCreds{}, testLogger(t))

	assert.Equal(t, entity.Unauthenticated, srv.Bootstrap())
}

func TestSessionService_LogoutClearsAndIsIdempotent(t *testing.T) {
	creds := &fakeCreds{token: "abc123"}
	srv := NewSessionService(&fakeBackend{}, creds, testLogger(t))
	srv.Bootstrap()

	require.NoError(t, srv.Logout(context.Background()))
	assert.Empty(t, creds.token)
	assert.Equal(t, entity.Unauthenticated, srv.State())

	// Logging out twice produces the same end state without error.
	require.NoError(t, srv.Logout(context.Background()))
	assert.Equal(t, entity.Unauthenticated, srv.State())
}

func TestSessionService_ResetPasswordMismatchSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	srv := NewSessionService(backend, &fakeCreds{}, testLogger(t))

	err := srv.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:           "farmer@example.com",
		OTP:             "123456",
		Password:        "newpass1",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	assert.Equal(t, domainerrors.ErrPasswordMismatch.Message(), domainerrors.UserMessage(err))
	assert.Zero(t, backend.calls)
}

func TestSessionService_ResetPasswordForwardsEmailFromPriorStep(t *testing.T) {
	var gotEmail, gotOTP, gotPassword string
	backend := &fakeBackend{
		resetFn: func(_ context.Context, email, otp, newPassword string) error {
			gotEmail, gotOTP, gotPassword = email, otp, newPassword

			return nil
		},
	}
	srv := NewSessionService(backend, &fakeCreds{}, testLogger(t))

	err := srv.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:           "farmer@example.com",
		OTP:             "123456",
		Password:        "newpass1",
		ConfirmPassword: "newpass1",
	})
	require.NoError(t, err)

	assert.Equal(t, "farmer@example.com", gotEmail)
	assert.Equal(t, "123456", gotOTP)
	assert.Equal(t, "newpass1", gotPassword)
}

func TestSessionService_RegisterDoesNotLogIn(t *testing.T) {
	backend := &fakeBackend{
		registerFn: func(context.Context, *service.RegisterInput) error { return nil },
	}
	creds := &fakeCreds{}
	srv := NewSessionService(backend, creds, testLogger(t))

	err := srv.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Farmer One",
		Email:    "farmer@example.com",
		Username: "farmer1",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Empty(t, creds.token)
	assert.Equal(t, entity.Unauthenticated, srv.State())
}

func TestSessionService_RequestPasswordResetRequiresEmail(t *testing.T) {
	backend := &fakeBackend{}
	srv := NewSessionService(backend, &fakeCreds{}, testLogger(t))

	err := srv.RequestPasswordReset(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.Zero(t, backend.calls)
}
