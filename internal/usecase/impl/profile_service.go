package impl

import (
	"context"
	"log/slog"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/domain/service"
	"agrodoctor/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	backend service.Backend
	logger  *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(backend service.Backend, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{backend: backend, logger: logger}
}

func (srv *profileService) Me(ctx context.Context) (*entity.UserProfile, error) {
	return srv.backend.Me(ctx)
}
