package ports

import (
	"context"
	"time"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// CreateProjectInput carries all data needed to open a project.
type CreateProjectInput struct {
	Name         string
	Description  string
	BusinessID   int
	ContractorID int
	StartDate    time.Time
	FinishDate   time.Time
	Image        string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByBusiness(ctx context.Context, businessID int) ([]domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// ProjectRepository defines the persistence boundary for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAllByBusinessID(ctx context.Context, businessID int) ([]domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
}
