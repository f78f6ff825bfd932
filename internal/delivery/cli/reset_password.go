package cli

import (
	"context"

	"agrodoctor/internal/usecase"
)

// resetPasswordScreen finishes the reset flow with the OTP delivered by
// mail. A successful reset lands on a fresh login screen.
type resetPasswordScreen struct {
	shell *Shell
	email string
}

func newResetPasswordScreen(shell *Shell, email string) *resetPasswordScreen {
	return &resetPasswordScreen{shell: shell, email: email}
}

func (r *resetPasswordScreen) Name() string { return "reset-password" }

func (r *resetPasswordScreen) Run(ctx context.Context) error {
	s := r.shell
	s.title("Reset Password")
	s.printf("Resetting the password for %s. Leave the OTP blank to go back.\n", r.email)

	otp, err := s.prompt("One-time password")
	if err != nil {
		return err
	}
	if otp == "" {
		s.nav.Pop()

		return nil
	}

	password, err := s.promptSecret("New password")
	if err != nil {
		return err
	}
	confirm, err := s.promptSecret("Confirm new password")
	if err != nil {
		return err
	}

	input := &usecase.ResetPasswordInput{
		Email:           r.email,
		OTP:             otp,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if err := s.session.ResetPassword(ctx, input); err != nil {
		s.notice(err)

		return nil
	}

	s.success("Password updated. Sign in with your new password.")
	s.nav.Replace(newLoginScreen(s))

	return nil
}
