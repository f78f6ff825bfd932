package cli

import (
	"context"

	"agrodoctor/internal/domain/entity"
)

// resultScreen shows the model's verdict and fans out to saving, the
// treatment plan and the impact estimate. Saving twice is blocked locally;
// the record was already logged.
type resultScreen struct {
	shell    *Shell
	analysis *entity.Analysis
	saved    bool
}

func newResultScreen(shell *Shell, analysis *entity.Analysis) *resultScreen {
	return &resultScreen{shell: shell, analysis: analysis}
}

func (r *resultScreen) Name() string { return "result" }

func (r *resultScreen) Run(ctx context.Context) error {
	s := r.shell
	s.title("Diagnosis Result")
	s.printf("Image:      %s\n", r.analysis.ImageRef)
	s.printf("Disease:    %s\n", r.analysis.DiseaseName)
	s.printf("Confidence: %s\n", r.analysis.Confidence)
	s.printf("Severity:   %s\n", s.severityLine(r.analysis.Severity))
	s.option("1", "Save to my history")
	s.option("2", "Treatment plan")
	s.option("3", "Economic impact")
	s.option("b", "Back")

	choice, err := s.choose()
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		r.save(ctx)
	case "2":
		s.nav.Push(newTreatmentScreen(s, r.analysis.DiseaseName, r.analysis.Severity))
	case "3":
		s.nav.Push(newImpactScreen(s, r.analysis.DiseaseName, r.analysis.Severity))
	case "b":
		s.nav.Pop()
	default:
		s.warn("Unknown option.")
	}

	return nil
}

func (r *resultScreen) save(ctx context.Context) {
	s := r.shell

	if r.saved {
		s.warn("This diagnosis is already saved.")

		return
	}

	if err := s.diagnosis.Save(ctx, r.analysis.DiseaseName, r.analysis.Severity); err != nil {
		if s.handleAuthFailure(ctx, err) {
			return
		}
		s.notice(err)

		return
	}

	r.saved = true
	s.success("Diagnosis saved to your history.")
}
