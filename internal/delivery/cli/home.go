package cli

import "context"

// homeScreen is the authenticated root. The greeting name is fetched once
// per visit to the screen, not cached across sessions.
type homeScreen struct {
	shell   *Shell
	greeted bool
	name    string
}

func newHomeScreen(shell *Shell) *homeScreen {
	return &homeScreen{shell: shell}
}

func (h *homeScreen) Name() string { return "home" }

func (h *homeScreen) Run(ctx context.Context) error {
	s := h.shell

	if !h.greeted {
		profile, err := s.profile.Me(ctx)
		switch {
		case err == nil:
			h.name = profile.Name
		case s.handleAuthFailure(ctx, err):
			return nil
		default:
			s.logger.Warn("greeting fetch failed")
		}
		h.greeted = true
	}

	s.title("AgroDoctor")
	if h.name != "" {
		s.printf("Welcome back, %s.\n", h.name)
	}
	s.option("1", "Diagnose a plant")
	s.option("2", "My diagnosis history")
	s.option("3", "Outbreak map")
	s.option("4", "Profile")
	s.option("5", "Send feedback")
	s.option("6", "About")
	s.option("t", "Toggle theme (now "+string(s.theme.Mode())+")")
	s.option("q", "Quit")

	choice, err := s.choose()
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		s.nav.Push(newUploadScreen(s))
	case "2":
		s.nav.Push(newHistoryScreen(s))
	case "3":
		s.nav.Push(newOutbreakScreen(s))
	case "4":
		s.nav.Push(newProfileScreen(s))
	case "5":
		s.nav.Push(newFeedbackScreen(s))
	case "6":
		s.nav.Push(newAboutScreen(s))
	case "t":
		s.success("Switched to the " + string(s.theme.Toggle()) + " theme.")
	case "q":
		s.nav.Quit()
	default:
		s.warn("Unknown option.")
	}

	return nil
}
