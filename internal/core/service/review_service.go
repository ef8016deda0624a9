package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if err := domain.ValidateReview(input.ContractorID, input.ProjectID, input.Rating); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ContractorID: input.ContractorID,
		ProjectID:    input.ProjectID,
		Duration:     input.Duration,
		Rating:       input.Rating,
		Comment:      input.Comment,
		Image:        input.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		s.logger.Error().Err(err).Int("contractor_id", input.ContractorID).Msg("failed to create review")
		return nil, err
	}

	s.logger.Info().Str("review_id", created.ID).Int("rating", created.Rating).Msg("review created")
	return created, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewService) ListByContractor(ctx context.Context, contractorID int) ([]domain.Review, error) {
	return s.repo.FindAllByContractorID(ctx, contractorID)
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial edit to an existing review. Only the comment,
// image and duration can change after creation.
func (s *ReviewService) Update(ctx context.Context, id string, input ports.UpdateReviewInput) (*domain.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	if input.Image != nil {
		review.Image = *input.Image
	}
	if input.Duration != nil {
		review.Duration = *input.Duration
	}
	review.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
