package cli

import "context"

// forgotPasswordScreen starts the two-step reset flow. On success the
// entered email travels forward to the OTP screen; nothing else is kept.
type forgotPasswordScreen struct {
	shell *Shell
}

func newForgotPasswordScreen(shell *Shell) *forgotPasswordScreen {
	return &forgotPasswordScreen{shell: shell}
}

func (f *forgotPasswordScreen) Name() string { return "forgot-password" }

func (f *forgotPasswordScreen) Run(ctx context.Context) error {
	s := f.shell
	s.title("Forgot Password")
	s.printf("Leave the email blank to go back.\n")

	email, err := s.prompt("Email")
	if err != nil {
		return err
	}
	if email == "" {
		s.nav.Pop()

		return nil
	}

	if err := s.session.RequestPasswordReset(ctx, email); err != nil {
		s.notice(err)

		return nil
	}

	s.success("A one-time password has been sent to " + email + ".")
	s.nav.Push(newResetPasswordScreen(s, email))

	return nil
}
