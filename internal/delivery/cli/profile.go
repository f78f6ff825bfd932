package cli

import "context"

// profileScreen shows the account and hosts sign-out. Signing out replaces
// the stack with the login screen so the authenticated area is gone from
// the back path.
type profileScreen struct {
	shell *Shell
}

func newProfileScreen(shell *Shell) *profileScreen {
	return &profileScreen{shell: shell}
}

func (p *profileScreen) Name() string { return "profile" }

func (p *profileScreen) Run(ctx context.Context) error {
	s := p.shell

	profile, err := s.profile.Me(ctx)
	if err != nil {
		if s.handleAuthFailure(ctx, err) {
			return nil
		}
		s.notice(err)
		s.nav.Pop()

		return nil
	}

	colors := s.theme.Colors()
	s.title("Profile")
	s.printf("%s(%s)%s %s\n", colors.Primary, profile.Initials(), colors.Reset, profile.Name)
	s.printf("Email:    %s\n", profile.Email)
	s.printf("Username: %s\n", profile.Username)
	s.option("t", "Toggle theme (now "+string(s.theme.Mode())+")")
	s.option("s", "Sign out")
	s.option("b", "Back")

	choice, err := s.choose()
	if err != nil {
		return err
	}

	switch choice {
	case "t":
		s.success("Switched to the " + string(s.theme.Toggle()) + " theme.")
	case "s":
		if err := s.session.Logout(ctx); err != nil {
			s.notice(err)

			return nil
		}
		s.success("Signed out.")
		s.nav.Replace(newLoginScreen(s))
	case "b":
		s.nav.Pop()
	default:
		s.warn("Unknown option.")
	}

	return nil
}
