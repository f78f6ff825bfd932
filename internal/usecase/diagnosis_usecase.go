package usecase

import (
	"context"

	"agrodoctor/internal/domain/entity"
)

// TreatmentPlan is the guidance shown for a diagnosed disease. It is
// assembled locally from the disease name and severity band; the backend
// exposes no treatment endpoint.
type TreatmentPlan struct {
	DiseaseName string
	Band        entity.SeverityBand
	Summary     string
	Steps       []string
}

// DiagnosisUsecase covers the analyze → result → save flow plus the
// read-only history and impact lookups.
type DiagnosisUsecase interface {
	// Analyze submits the image at path and returns the model's verdict
	// with the image reference attached.
	Analyze(ctx context.Context, path string) (*entity.Analysis, error)

	// Save geo-tags and persists one diagnosis. Location acquisition has
	// its own permission failure path; when it fails the record is not
	// logged.
	Save(ctx context.Context, diseaseName string, severity float64) error

	// History lists the user's records, newest first.
	History(ctx context.Context) ([]entity.Diagnosis, error)

	// Impact fetches the economic-loss estimate for the given verdict.
	Impact(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error)

	// Treatment assembles local guidance for the given verdict.
	Treatment(diseaseName string, severity float64) *TreatmentPlan
}
