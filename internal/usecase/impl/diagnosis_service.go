package impl

import (
	"context"
	"log/slog"
	"os"
	"sort"

	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/service"
	"agrodoctor/internal/usecase"

	"github.com/pkg/errors"
)

// diagnosisService implements the DiagnosisUsecase interface.
type diagnosisService struct {
	backend service.Backend
	locator service.Locator
	logger  *slog.Logger
}

// NewDiagnosisService is the constructor for diagnosisService.
func NewDiagnosisService(
	backend service.Backend,
	locator service.Locator,
	logger *slog.Logger,
) usecase.DiagnosisUsecase {
	return &diagnosisService{
		backend: backend,
		locator: locator,
		logger:  logger,
	}
}

// Analyze reads the image at path and submits it for classification. The
// resulting verdict carries the original image reference so the result
// screen can show where it came from.
func (srv *diagnosisService) Analyze(ctx context.Context, path string) (*entity.Analysis, error) {
	if path == "" {
		return nil, errors.WithStack(domainerrors.ErrNoImage)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, domainerrors.ErrNoImage.WithDetails(err.Error())
	}
	defer file.Close()

	analysis, err := srv.backend.AnalyzePlant(ctx, path, file)
	if err != nil {
		return nil, err
	}
	analysis.ImageRef = path

	srv.logger.Info("image analyzed",
		slog.String("disease", analysis.DiseaseName),
		slog.Float64("severity", analysis.Severity))

	return analysis, nil
}

// Save acquires the device position and logs the diagnosis. Location
// failures abandon the save; the caller surfaces the permission guidance.
func (srv *diagnosisService) Save(ctx context.Context, diseaseName string, severity float64) error {
	position, err := srv.locator.Current(ctx)
	if err != nil {
		srv.logger.Debug("location unavailable", slog.Any("error", err))

		return err
	}

	if err := srv.backend.LogDiagnosis(ctx, &service.DiagnosisInput{
		DiseaseName: diseaseName,
		Severity:    severity,
		Latitude:    position.Latitude,
		Longitude:   position.Longitude,
	}); err != nil {
		return err
	}

	srv.logger.Info("diagnosis logged", slog.String("disease", diseaseName))

	return nil
}

// History lists the user's records newest first. The backend returns them
// in insertion order, matching the mobile app's reversed rendering.
func (srv *diagnosisService) History(ctx context.Context) ([]entity.Diagnosis, error) {
	records, err := srv.backend.History(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	return records, nil
}

func (srv *diagnosisService) Impact(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error) {
	return srv.backend.CalculateImpact(ctx, diseaseName, severity)
}
