package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if !input.FinishDate.After(input.StartDate) {
		return nil, domain.ErrInvalidProjectDates
	}

	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateProject
	}

	project := &domain.Project{
		Name:         input.Name,
		Description:  input.Description,
		BusinessID:   input.BusinessID,
		ContractorID: input.ContractorID,
		StartDate:    input.StartDate,
		FinishDate:   input.FinishDate,
		Image:        input.Image,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("name", created.Name).Msg("project created")
	return created, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) ListByBusiness(ctx context.Context, businessID int) ([]domain.Project, error) {
	return s.repo.FindAllByBusinessID(ctx, businessID)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FindAll(ctx)
}
