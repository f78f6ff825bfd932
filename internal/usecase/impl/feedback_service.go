package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/service"
	"agrodoctor/internal/usecase"

	"github.com/pkg/errors"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	backend service.Backend
	logger  *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(backend service.Backend, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{backend: backend, logger: logger}
}

// Submit refetches the sender's profile and sends the message tied to it.
// Empty feedback is rejected before any request goes out.
func (srv *feedbackService) Submit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.WithStack(domainerrors.ErrEmptyFeedback)
	}

	profile, err := srv.backend.Me(ctx)
	if err != nil {
		return err
	}

	if err := srv.backend.SubmitFeedback(ctx, &service.FeedbackInput{
		Name:    profile.Name,
		Email:   profile.Email,
		Message: message,
	}); err != nil {
		return err
	}

	srv.logger.Info("feedback submitted", slog.String("email", profile.Email))

	return nil
}
