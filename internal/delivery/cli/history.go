package cli

import "context"

// historyScreen lists the user's saved diagnoses, newest first.
type historyScreen struct {
	shell *Shell
}

func newHistoryScreen(shell *Shell) *historyScreen {
	return &historyScreen{shell: shell}
}

func (h *historyScreen) Name() string { return "history" }

func (h *historyScreen) Run(ctx context.Context) error {
	s := h.shell

	records, err := s.diagnosis.History(ctx)
	if err != nil {
		if s.handleAuthFailure(ctx, err) {
			return nil
		}
		s.notice(err)
		s.nav.Pop()

		return nil
	}

	s.title("My Diagnosis History")
	if len(records) == 0 {
		s.printf("No diagnoses saved yet.\n")
	}
	for _, record := range records {
		s.printf("%s  %-28s %s\n",
			record.Timestamp.Format("02 Jan 2006 15:04"),
			record.DiseaseName,
			s.severityLine(record.Severity))
		s.printf("                   at %.4f, %.4f\n", record.Latitude, record.Longitude)
	}
	s.printf("\n")

	if err := s.pause(); err != nil {
		return err
	}

	s.nav.Pop()

	return nil
}
