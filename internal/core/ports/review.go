package ports

import (
	"context"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// CreateReviewInput carries all data needed to leave a review.
type CreateReviewInput struct {
	ContractorID int
	ProjectID    int
	Duration     string
	Rating       int
	Comment      string
	Image        string
}

// UpdateReviewInput carries a partial update; nil fields are left untouched.
type UpdateReviewInput struct {
	Comment  *string
	Image    *string
	Duration *string
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByContractor(ctx context.Context, contractorID int) ([]domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, id string, input UpdateReviewInput) (*domain.Review, error)
}

// ReviewRepository defines the persistence boundary for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindAllByContractorID(ctx context.Context, contractorID int) ([]domain.Review, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
}
