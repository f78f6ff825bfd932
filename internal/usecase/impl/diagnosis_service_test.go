package impl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leaf.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake-image-bytes"), 0o600))

	return path
}

func TestDiagnosisService_AnalyzeAttachesImageRef(t *testing.T) {
	path := writeTempImage(t)
	backend := &fakeBackend{
		analyzeFn: func(_ context.Context, filename string, image io.Reader) (*entity.Analysis, error) {
			content, err := io.ReadAll(image)
			require.NoError(t, err)
			assert.Equal(t, "fake-image-bytes", string(content))
			assert.Equal(t, path, filename)

			return &entity.Analysis{
				DiseaseName: "Late Blight",
				Confidence:  "97.2%",
				Severity:    62.5,
			}, nil
		},
	}
	srv := NewDiagnosisService(backend, &fakeLocator{}, testLogger(t))

	analysis, err := srv.Analyze(context.Background(), path)
	require.NoError(t, err)

	// The verdict arrives unmodified, with the local image reference added.
	assert.Equal(t, "Late Blight", analysis.DiseaseName)
	assert.Equal(t, "97.2%", analysis.Confidence)
	assert.Equal(t, 62.5, analysis.Severity)
	assert.Equal(t, path, analysis.ImageRef)
}

func TestDiagnosisService_AnalyzeWithoutImage(t *testing.T) {
	backend := &fakeBackend{}
	srv := NewDiagnosisService(backend, &fakeLocator{}, testLogger(t))

	_, err := srv.Analyze(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.Zero(t, backend.calls)
}

func TestDiagnosisService_SaveGeoTagsRecord(t *testing.T) {
	var got *service.DiagnosisInput
	backend := &fakeBackend{
		logFn: func(_ context.Context, input *service.DiagnosisInput) error {
			got = input

			return nil
		},
	}
	locator := &fakeLocator{position: &service.Position{Latitude: 26.1445, Longitude: 91.7362}}
	srv := NewDiagnosisService(backend, locator, testLogger(t))

	require.NoError(t, srv.Save(context.Background(), "Late Blight", 62.5))

	require.NotNil(t, got)
	assert.Equal(t, "Late Blight", got.DiseaseName)
	assert.Equal(t, 62.5, got.Severity)
	assert.Equal(t, 26.1445, got.Latitude)
	assert.Equal(t, 91.7362, got.Longitude)
}

func TestDiagnosisService_SaveAbandonedOnPermissionDenial(t *testing.T) {
	backend := &fakeBackend{}
	locator := &fakeLocator{err: domainerrors.ErrLocationPermission}
	srv := NewDiagnosisService(backend, locator, testLogger(t))

	err := srv.Save(context.Background(), "Late Blight", 62.5)
	require.Error(t, err)

	assert.Equal(t, domainerrors.KindPermission, domainerrors.KindOf(err))
	assert.Zero(t, backend.calls)
}

func TestDiagnosisService_HistoryNewestFirst(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	backend := &fakeBackend{
		historyFn: func(context.Context) ([]entity.Diagnosis, error) {
			return []entity.Diagnosis{
				{ID: 1, DiseaseName: "Leaf Rust", Timestamp: older},
				{ID: 2, DiseaseName: "Late Blight", Timestamp: newer},
			}, nil
		},
	}
	srv := NewDiagnosisService(backend, &fakeLocator{}, testLogger(t))

	records, err := srv.History(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, int64(1), records[1].ID)
}

func TestDiagnosisService_TreatmentMatchesDiseaseAndBand(t *testing.T) {
	srv := NewDiagnosisService(&fakeBackend{}, &fakeLocator{}, testLogger(t))

	plan := srv.Treatment("Tomato Late Blight", 72.0)
	assert.Equal(t, entity.SeverityHigh, plan.Band)
	assert.NotEmpty(t, plan.Summary)
	assert.NotEmpty(t, plan.Steps)

	unknown := srv.Treatment("Unheard-of Disease", 10.0)
	assert.Equal(t, entity.SeverityLow, unknown.Band)
	assert.NotEmpty(t, unknown.Steps)
}
