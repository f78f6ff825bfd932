package cli

import "context"

// aboutScreen is static information about the product and its backend.
type aboutScreen struct {
	shell *Shell
}

func newAboutScreen(shell *Shell) *aboutScreen {
	return &aboutScreen{shell: shell}
}

func (a *aboutScreen) Name() string { return "about" }

func (a *aboutScreen) Run(ctx context.Context) error {
	s := a.shell
	s.title("About AgroDoctor")
	s.printf("AgroDoctor diagnoses crop diseases from leaf photos, estimates their\n")
	s.printf("economic impact and maps regional outbreaks from farmer reports.\n\n")
	s.printf("Server: %s\n\n", s.cfg.API.BaseURL)

	if err := s.pause(); err != nil {
		return err
	}

	s.nav.Pop()

	return nil
}
