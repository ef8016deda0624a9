package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type BusinessService struct {
	repo   ports.BusinessRepository
	logger zerolog.Logger
}

func NewBusinessService(repo ports.BusinessRepository, logger zerolog.Logger) *BusinessService {
	return &BusinessService{repo: repo, logger: logger}
}

func (s *BusinessService) Create(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error) {
	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateBusiness
	}

	now := time.Now().UTC()
	business := &domain.Business{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		Image:       input.Image,
		Expertise:   input.Expertise,
		RemodelerID: input.RemodelerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, business)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create business")
		return nil, err
	}

	s.logger.Info().Str("business_id", created.ID).Str("name", created.Name).Msg("business created")
	return created, nil
}

func (s *BusinessService) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BusinessService) List(ctx context.Context) ([]domain.Business, error) {
	return s.repo.FindAll(ctx)
}
