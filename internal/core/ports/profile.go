package ports

import (
	"context"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// CreateProfileInput carries all data needed to publish a profile card.
// Subscription only applies to remodeler profiles.
type CreateProfileInput struct {
	Kind         domain.ProfileKind
	UserID       string
	Description  string
	Phone        string
	Subscription string
}

// ProfileService defines use-case operations for contractor and remodeler
// information cards.
type ProfileService interface {
	Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	ListByKind(ctx context.Context, kind domain.ProfileKind) ([]domain.Profile, error)
}

// ProfileRepository defines the persistence boundary for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindAllByKind(ctx context.Context, kind domain.ProfileKind) ([]domain.Profile, error)
}
