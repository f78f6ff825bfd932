package cli

import "context"

// feedbackScreen collects a free-text message. The sender's name and email
// are attached from the profile at submit time.
type feedbackScreen struct {
	shell *Shell
}

func newFeedbackScreen(shell *Shell) *feedbackScreen {
	return &feedbackScreen{shell: shell}
}

func (f *feedbackScreen) Name() string { return "feedback" }

func (f *feedbackScreen) Run(ctx context.Context) error {
	s := f.shell
	s.title("Send Feedback")
	s.printf("Leave the message blank to go back.\n")

	message, err := s.prompt("Your message")
	if err != nil {
		return err
	}
	if message == "" {
		s.nav.Pop()

		return nil
	}

	if err := s.feedback.Submit(ctx, message); err != nil {
		if s.handleAuthFailure(ctx, err) {
			return nil
		}
		s.notice(err)

		return nil
	}

	s.success("Thank you for your feedback.")
	s.nav.Pop()

	return nil
}
