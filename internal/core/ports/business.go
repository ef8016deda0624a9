package ports

import (
	"context"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// CreateBusinessInput carries all data needed to register a business.
type CreateBusinessInput struct {
	Name        string
	Description string
	Address     string
	City        string
	Image       string
	Expertise   string
	RemodelerID int
}

// BusinessService defines use-case operations for businesses.
type BusinessService interface {
	Create(ctx context.Context, input CreateBusinessInput) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context) ([]domain.Business, error)
}

// BusinessRepository defines the persistence boundary for businesses.
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]domain.Business, error)
}
