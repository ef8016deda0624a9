package ports

import (
	"context"
	"time"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// CreateRequestInput carries all data needed to send a project request.
type CreateRequestInput struct {
	Name         string
	Surname      string
	Email        string
	Phone        string
	Address      string
	City         string
	Description  string
	BusinessID   int
	ContractorID int
	Deadline     time.Time
	Rooms        int
	Budget       float64
}

// RequestService defines use-case operations for project requests.
type RequestService interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.ProjectRequest, error)
	GetByID(ctx context.Context, id string) (*domain.ProjectRequest, error)
	ListByBusiness(ctx context.Context, businessID int) ([]domain.ProjectRequest, error)
	ListByContractor(ctx context.Context, contractorID int) ([]domain.ProjectRequest, error)
}

// RequestRepository defines the persistence boundary for project requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.ProjectRequest) (*domain.ProjectRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ProjectRequest, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAllByBusinessID(ctx context.Context, businessID int) ([]domain.ProjectRequest, error)
	FindAllByContractorID(ctx context.Context, contractorID int) ([]domain.ProjectRequest, error)
}

// RequestNotification is the message handed to the notification dispatcher
// when a project request is created.
type RequestNotification struct {
	RequestID    string
	RequestName  string
	ContractorID int
	Email        string
}

// Notifier delivers a single contractor notification.
type Notifier interface {
	Notify(ctx context.Context, n RequestNotification) error
}
