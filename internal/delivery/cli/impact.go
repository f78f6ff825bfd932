package cli

import "context"

// impactScreen fetches and renders the economic-loss estimate for the
// current verdict. Figures are in INR, as served by the backend.
type impactScreen struct {
	shell       *Shell
	diseaseName string
	severity    float64
}

func newImpactScreen(shell *Shell, diseaseName string, severity float64) *impactScreen {
	return &impactScreen{shell: shell, diseaseName: diseaseName, severity: severity}
}

func (i *impactScreen) Name() string { return "impact" }

func (i *impactScreen) Run(ctx context.Context) error {
	s := i.shell

	report, err := s.diagnosis.Impact(ctx, i.diseaseName, i.severity)
	if err != nil {
		if s.handleAuthFailure(ctx, err) {
			return nil
		}
		s.notice(err)
		s.nav.Pop()

		return nil
	}

	s.title("Economic Impact")
	s.printf("Disease:             %s\n", report.DiseaseName)
	s.printf("Estimated yield loss: %.1f%%\n", report.YieldLossPercentage)
	s.printf("Potential loss:       Rs %.0f to Rs %.0f per hectare\n",
		report.PotentialFinancialLossMin, report.PotentialFinancialLossMax)
	s.printf("\n")

	if err := s.pause(); err != nil {
		return err
	}

	s.nav.Pop()

	return nil
}
