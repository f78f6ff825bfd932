package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"agrodoctor/config"
	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/infra/theme"
	"agrodoctor/internal/usecase"
)

// fakeSession implements usecase.SessionUsecase with overridable behavior.
type fakeSession struct {
	state       entity.SessionState
	logoutCalls int

	loginFn    func(ctx context.Context, input *usecase.LoginInput) error
	registerFn func(ctx context.Context, input *usecase.RegisterInput) error
	forgotFn   func(ctx context.Context, email string) error
	resetFn    func(ctx context.Context, input *usecase.ResetPasswordInput) error
}

func (f *fakeSession) State() entity.SessionState     { return f.state }
func (f *fakeSession) Bootstrap() entity.SessionState { return f.state }

func (f *fakeSession) Login(ctx context.Context, input *usecase.LoginInput) error {
	if f.loginFn == nil {
		f.state = entity.Authenticated

		return nil
	}

	err := f.loginFn(ctx, input)
	if err == nil {
		f.state = entity.Authenticated
	}

	return err
}

func (f *fakeSession) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if f.registerFn == nil {
		return nil
	}

	return f.registerFn(ctx, input)
}

func (f *fakeSession) RequestPasswordReset(ctx context.Context, email string) error {
	if f.forgotFn == nil {
		return nil
	}

	return f.forgotFn(ctx, email)
}

func (f *fakeSession) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if f.resetFn == nil {
		return nil
	}

	return f.resetFn(ctx, input)
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalls++
	f.state = entity.Unauthenticated

	return nil
}

// fakeDiagnosis implements usecase.DiagnosisUsecase.
type fakeDiagnosis struct {
	saveCalls int

	analyzeFn func(ctx context.Context, path string) (*entity.Analysis, error)
	saveFn    func(ctx context.Context, diseaseName string, severity float64) error
	historyFn func(ctx context.Context) ([]entity.Diagnosis, error)
	impactFn  func(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error)
}

func (f *fakeDiagnosis) Analyze(ctx context.Context, path string) (*entity.Analysis, error) {
	return f.analyzeFn(ctx, path)
}

func (f *fakeDiagnosis) Save(ctx context.Context, diseaseName string, severity float64) error {
	f.saveCalls++
	if f.saveFn == nil {
		return nil
	}

	return f.saveFn(ctx, diseaseName, severity)
}

func (f *fakeDiagnosis) History(ctx context.Context) ([]entity.Diagnosis, error) {
	return f.historyFn(ctx)
}

func (f *fakeDiagnosis) Impact(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error) {
	return f.impactFn(ctx, diseaseName, severity)
}

func (f *fakeDiagnosis) Treatment(diseaseName string, severity float64) *usecase.TreatmentPlan {
	return &usecase.TreatmentPlan{
		DiseaseName: diseaseName,
		Band:        entity.BandOf(severity),
		Summary:     "Keep the crop under observation.",
		Steps:       []string{"Remove affected leaves."},
	}
}

// fakeOutbreak implements usecase.OutbreakUsecase.
type fakeOutbreak struct {
	mapFn func(ctx context.Context, width, height int) (*usecase.OutbreakMap, error)
}

func (f *fakeOutbreak) Hotspots(context.Context) ([]entity.Hotspot, error) { return nil, nil }

func (f *fakeOutbreak) Map(ctx context.Context, width, height int) (*usecase.OutbreakMap, error) {
	return f.mapFn(ctx, width, height)
}

// fakeProfile implements usecase.ProfileUsecase.
type fakeProfile struct {
	meFn func(ctx context.Context) (*entity.UserProfile, error)
}

func (f *fakeProfile) Me(ctx context.Context) (*entity.UserProfile, error) {
	if f.meFn == nil {
		return &entity.UserProfile{Name: "Farmer One", Email: "farmer@example.com", Username: "farmer1"}, nil
	}

	return f.meFn(ctx)
}

// fakeFeedback implements usecase.FeedbackUsecase.
type fakeFeedback struct {
	submitFn func(ctx context.Context, message string) error
}

func (f *fakeFeedback) Submit(ctx context.Context, message string) error {
	if f.submitFn == nil {
		return nil
	}

	return f.submitFn(ctx, message)
}

// newTestShell builds a Shell over scripted input and a captured output
// buffer. Zero usecase fields in params get inert fakes.
func newTestShell(t *testing.T, input string, params Params) (*Shell, *bytes.Buffer) {
	t.Helper()

	if params.Config == nil {
		cfg := &config.Config{}
		cfg.API.BaseURL = "http://agrodoctor.test"
		cfg.Theme.Mode = "dark"
		params.Config = cfg
	}
	params.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	params.Theme = theme.New(params.Config)

	if params.Session == nil {
		params.Session = &fakeSession{}
	}
	if params.Diagnosis == nil {
		params.Diagnosis = &fakeDiagnosis{}
	}
	if params.Outbreak == nil {
		params.Outbreak = &fakeOutbreak{}
	}
	if params.Profile == nil {
		params.Profile = &fakeProfile{}
	}
	if params.Feedback == nil {
		params.Feedback = &fakeFeedback{}
	}

	var out bytes.Buffer
	shell := newShell(params, strings.NewReader(input), &out)

	return shell, &out
}
