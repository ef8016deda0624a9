package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type ProfileService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) Create(ctx context.Context, input ports.CreateProfileInput) (*domain.Profile, error) {
	now := time.Now().UTC()
	profile := &domain.Profile{
		Kind:        input.Kind,
		UserID:      input.UserID,
		Description: input.Description,
		Phone:       input.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Kind == domain.ProfileRemodeler {
		profile.Subscription = input.Subscription
	}

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(input.Kind)).Msg("failed to create profile")
		return nil, err
	}
	return created, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) ListByKind(ctx context.Context, kind domain.ProfileKind) ([]domain.Profile, error) {
	return s.repo.FindAllByKind(ctx, kind)
}
