package cli

import "context"

// uploadScreen asks for a leaf image and submits it for analysis. The
// verdict opens the result screen; failures leave the user here to retry.
type uploadScreen struct {
	shell *Shell
}

func newUploadScreen(shell *Shell) *uploadScreen {
	return &uploadScreen{shell: shell}
}

func (u *uploadScreen) Name() string { return "upload" }

func (u *uploadScreen) Run(ctx context.Context) error {
	s := u.shell
	s.title("Diagnose a Plant")
	s.printf("Leave the path blank to go back.\n")

	path, err := s.prompt("Leaf image path")
	if err != nil {
		return err
	}
	if path == "" {
		s.nav.Pop()

		return nil
	}

	s.printf("Analyzing the leaf image...\n")
	analysis, err := s.diagnosis.Analyze(ctx, path)
	if err != nil {
		if s.handleAuthFailure(ctx, err) {
			return nil
		}
		s.notice(err)

		return nil
	}

	s.nav.Push(newResultScreen(s, analysis))

	return nil
}
