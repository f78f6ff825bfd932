package usecase

import (
	"context"

	"agrodoctor/internal/domain/entity"
)

// ProfileUsecase serves the profile screen. The profile is fetched on
// demand and held only in the active screen's state.
type ProfileUsecase interface {
	Me(ctx context.Context) (*entity.UserProfile, error)
}

// FeedbackUsecase submits free-text feedback. The sender's identity is
// refetched at submit time rather than cached.
type FeedbackUsecase interface {
	Submit(ctx context.Context, message string) error
}
