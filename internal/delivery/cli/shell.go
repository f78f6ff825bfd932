package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"agrodoctor/config"
	"agrodoctor/internal/delivery"
	"agrodoctor/internal/domain/entity"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/infra/theme"
	"agrodoctor/internal/usecase"

	"go.uber.org/fx"
)

// Params collects everything the terminal front end needs.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Theme     *theme.Provider
	Session   usecase.SessionUsecase
	Diagnosis usecase.DiagnosisUsecase
	Outbreak  usecase.OutbreakUsecase
	Profile   usecase.ProfileUsecase
	Feedback  usecase.FeedbackUsecase
}

// Shell is the shared state behind every screen: the use cases, the
// palette, the navigator and the terminal streams. Screens hold a pointer
// to it instead of wiring each dependency individually.
type Shell struct {
	cfg    *config.Config
	logger *slog.Logger
	theme  *theme.Provider

	session   usecase.SessionUsecase
	diagnosis usecase.DiagnosisUsecase
	outbreak  usecase.OutbreakUsecase
	profile   usecase.ProfileUsecase
	feedback  usecase.FeedbackUsecase

	nav *Navigator

	stdin io.Reader
	in    *bufio.Reader
	out   io.Writer
}

// New builds the terminal delivery reading from stdin and writing to
// stdout. Logs go to stderr so they never interleave with screen output.
func New(params Params) delivery.Delivery {
	return newShell(params, os.Stdin, os.Stdout)
}

func newShell(params Params, stdin io.Reader, out io.Writer) *Shell {
	return &Shell{
		cfg:       params.Config,
		logger:    params.Logger,
		theme:     params.Theme,
		session:   params.Session,
		diagnosis: params.Diagnosis,
		outbreak:  params.Outbreak,
		profile:   params.Profile,
		feedback:  params.Feedback,
		nav:       NewNavigator(params.Logger),
		stdin:     stdin,
		in:        bufio.NewReader(stdin),
		out:       out,
	}
}

// Serve decides the launch screen from the persisted token and runs the
// navigator until the user quits or the input stream closes.
func (s *Shell) Serve(ctx context.Context) error {
	if s.session.Bootstrap() == entity.Authenticated {
		s.nav.Replace(newHomeScreen(s))
	} else {
		s.nav.Replace(newLoginScreen(s))
	}

	return s.nav.Run(ctx)
}

// handleAuthFailure consumes a rejected-token error: the stored credential
// is cleared and the flow restarts at the login screen. Reports whether it
// consumed err.
func (s *Shell) handleAuthFailure(ctx context.Context, err error) bool {
	if !domainerrors.IsUnauthorized(err) {
		return false
	}

	s.logger.Warn("stored token rejected, forcing logout")
	if logoutErr := s.session.Logout(ctx); logoutErr != nil {
		s.logger.Error("logout after token rejection failed", slog.Any("error", logoutErr))
	}

	s.warn("Your session has expired. Please sign in again.")
	s.nav.Replace(newLoginScreen(s))

	return true
}
