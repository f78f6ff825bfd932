package cli

import (
	"context"

	"agrodoctor/internal/usecase"
)

// registerScreen collects the sign-up form. Creating an account does not
// sign the user in; the flow pops back to the login screen.
type registerScreen struct {
	shell *Shell
}

func newRegisterScreen(shell *Shell) *registerScreen {
	return &registerScreen{shell: shell}
}

func (r *registerScreen) Name() string { return "register" }

func (r *registerScreen) Run(ctx context.Context) error {
	s := r.shell
	s.title("Create Account")
	s.printf("Leave the name blank to go back.\n")

	name, err := s.prompt("Full name")
	if err != nil {
		return err
	}
	if name == "" {
		s.nav.Pop()

		return nil
	}

	email, err := s.prompt("Email")
	if err != nil {
		return err
	}
	username, err := s.prompt("Username")
	if err != nil {
		return err
	}
	password, err := s.promptSecret("Password")
	if err != nil {
		return err
	}

	input := &usecase.RegisterInput{Name: name, Email: email, Username: username, Password: password}
	if err := s.session.Register(ctx, input); err != nil {
		s.notice(err)

		return nil
	}

	s.success("Account created. Sign in to continue.")
	s.nav.Pop()

	return nil
}
