package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/domain/service"
)

// fakeBackend implements service.Backend with overridable behavior and call
// counting, so tests can assert that local validation short-circuits before
// any request is made.
type fakeBackend struct {
	calls int

	loginFn    func(ctx context.Context, username, password string) (string, error)
	registerFn func(ctx context.Context, input *service.RegisterInput) error
	meFn       func(ctx context.Context) (*entity.UserProfile, error)
	forgotFn   func(ctx context.Context, email string) error
	resetFn    func(ctx context.Context, email, otp, newPassword string) error
	analyzeFn  func(ctx context.Context, filename string, image io.Reader) (*entity.Analysis, error)
	logFn      func(ctx context.Context, input *service.DiagnosisInput) error
	historyFn  func(ctx context.Context) ([]entity.Diagnosis, error)
	impactFn   func(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error)
	hotspotsFn func(ctx context.Context) ([]entity.Hotspot, error)
	feedbackFn func(ctx context.Context, input *service.FeedbackInput) error
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) (string, error) {
	f.calls++

	return f.loginFn(ctx, username, password)
}

func (f *fakeBackend) Register(ctx context.Context, input *service.RegisterInput) error {
	f.calls++

	return f.registerFn(ctx, input)
}

func (f *fakeBackend) Me(ctx context.Context) (*entity.UserProfile, error) {
	f.calls++

	return f.meFn(ctx)
}

func (f *fakeBackend) RequestPasswordReset(ctx context.Context, email string) error {
	f.calls++

	return f.forgotFn(ctx, email)
}

func (f *fakeBackend) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	f.calls++

	return f.resetFn(ctx, email, otp, newPassword)
}

func (f *fakeBackend) AnalyzePlant(ctx context.Context, filename string, image io.Reader) (*entity.Analysis, error) {
	f.calls++

	return f.analyzeFn(ctx, filename, image)
}

func (f *fakeBackend) LogDiagnosis(ctx context.Context, input *service.DiagnosisInput) error {
	f.calls++

	return f.logFn(ctx, input)
}

func (f *fakeBackend) History(ctx context.Context) ([]entity.Diagnosis, error) {
	f.calls++

	return f.historyFn(ctx)
}

func (f *fakeBackend) CalculateImpact(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error) {
	f.calls++

	return f.impactFn(ctx, diseaseName, severity)
}

func (f *fakeBackend) Hotspots(ctx context.Context) ([]entity.Hotspot, error) {
	f.calls++

	return f.hotspotsFn(ctx)
}

func (f *fakeBackend) SubmitFeedback(ctx context.Context, input *service.FeedbackInput) error {
	f.calls++

	return f.feedbackFn(ctx, input)
}

// fakeCreds is an in-memory credential store.
type fakeCreds struct {
	token string
}

func (f *fakeCreds) Save(token string) error {
	f.token = token

	return nil
}

func (f *fakeCreds) Load() (string, bool, error) {
	return f.token, f.token != "", nil
}

func (f *fakeCreds) Clear() error {
	f.token = ""

	return nil
}

// fakeLocator serves a fixed position or error.
type fakeLocator struct {
	position *service.Position
	err      error
}

func (f *fakeLocator) Current(context.Context) (*service.Position, error) {
	return f.position, f.err
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
