package cli

import (
	"context"

	"agrodoctor/internal/usecase"
)

// loginScreen is the unauthenticated root. Signing in replaces the whole
// stack with the home screen so back navigation cannot reach it again.
type loginScreen struct {
	shell *Shell
}

func newLoginScreen(shell *Shell) *loginScreen {
	return &loginScreen{shell: shell}
}

func (l *loginScreen) Name() string { return "login" }

func (l *loginScreen) Run(ctx context.Context) error {
	s := l.shell
	s.title("AgroDoctor Sign In")
	s.option("1", "Sign in")
	s.option("2", "Create an account")
	s.option("3", "Forgot password")
	s.option("q", "Quit")

	choice, err := s.choose()
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return l.signIn(ctx)
	case "2":
		s.nav.Push(newRegisterScreen(s))
	case "3":
		s.nav.Push(newForgotPasswordScreen(s))
	case "q":
		s.nav.Quit()
	default:
		s.warn("Unknown option.")
	}

	return nil
}

func (l *loginScreen) signIn(ctx context.Context) error {
	s := l.shell

	username, err := s.prompt("Username")
	if err != nil {
		return err
	}
	password, err := s.promptSecret("Password")
	if err != nil {
		return err
	}

	if err := s.session.Login(ctx, &usecase.LoginInput{Username: username, Password: password}); err != nil {
		s.notice(err)

		return nil
	}

	s.nav.Replace(newHomeScreen(s))

	return nil
}
