package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// RequestEnqueuer hands a notification to the background dispatcher. The
// call must not block the request path.
type RequestEnqueuer interface {
	Enqueue(n ports.RequestNotification)
}

type RequestService struct {
	repo     ports.RequestRepository
	enqueuer RequestEnqueuer
	logger   zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, enqueuer RequestEnqueuer, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, enqueuer: enqueuer, logger: logger}
}

func (s *RequestService) Create(ctx context.Context, input ports.CreateRequestInput) (*domain.ProjectRequest, error) {
	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateRequest
	}

	request := &domain.ProjectRequest{
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		Description:  input.Description,
		BusinessID:   input.BusinessID,
		ContractorID: input.ContractorID,
		Deadline:     input.Deadline,
		Rooms:        input.Rooms,
		Budget:       input.Budget,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create project request")
		return nil, err
	}

	if s.enqueuer != nil {
		s.enqueuer.Enqueue(ports.RequestNotification{
			RequestID:    created.ID,
			RequestName:  created.Name,
			ContractorID: created.ContractorID,
			Email:        created.Email,
		})
	}

	s.logger.Info().Str("request_id", created.ID).Int("contractor_id", created.ContractorID).Msg("project request created")
	return created, nil
}

func (s *RequestService) GetByID(ctx context.Context, id string) (*domain.ProjectRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RequestService) ListByBusiness(ctx context.Context, businessID int) ([]domain.ProjectRequest, error) {
	return s.repo.FindAllByBusinessID(ctx, businessID)
}

func (s *RequestService) ListByContractor(ctx context.Context, contractorID int) ([]domain.ProjectRequest, error) {
	return s.repo.FindAllByContractorID(ctx, contractorID)
}
