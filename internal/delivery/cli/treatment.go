package cli

import "context"

// treatmentScreen renders the locally assembled care plan. No network is
// involved; the plan derives from the disease name and severity band.
type treatmentScreen struct {
	shell       *Shell
	diseaseName string
	severity    float64
}

func newTreatmentScreen(shell *Shell, diseaseName string, severity float64) *treatmentScreen {
	return &treatmentScreen{shell: shell, diseaseName: diseaseName, severity: severity}
}

func (t *treatmentScreen) Name() string { return "treatment" }

func (t *treatmentScreen) Run(ctx context.Context) error {
	s := t.shell
	plan := s.diagnosis.Treatment(t.diseaseName, t.severity)

	s.title("Treatment Plan")
	s.printf("Disease:  %s\n", plan.DiseaseName)
	s.printf("Severity: %s\n", s.severityLine(t.severity))
	s.printf("\n%s\n\n", plan.Summary)
	for i, step := range plan.Steps {
		s.printf("  %d. %s\n", i+1, step)
	}
	s.printf("\n")

	if err := s.pause(); err != nil {
		return err
	}

	s.nav.Pop()

	return nil
}
