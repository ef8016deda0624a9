package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type stubProjectRepo struct {
	projects []domain.Project
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	created := *p
	created.ID = strconv.Itoa(len(r.projects) + 1)
	r.projects = append(r.projects, created)
	return &created, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for i := range r.projects {
		if r.projects[i].Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProjectRepo) FindAllByBusinessID(_ context.Context, businessID int) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.projects {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	return append([]domain.Project(nil), r.projects...), nil
}

func validProjectInput() ports.CreateProjectInput {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return ports.CreateProjectInput{
		Name:         "Kitchen refit",
		BusinessID:   3,
		ContractorID: 9,
		StartDate:    start,
		FinishDate:   start.AddDate(0, 2, 0),
	}
}

func TestProjectService_Create(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), validProjectInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.BusinessID != 3 || created.ContractorID != 9 {
		t.Fatalf("unexpected project: %+v", created)
	}
}

func TestProjectService_Create_InvalidDates(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, zerolog.Nop())

	input := validProjectInput()
	input.FinishDate = input.StartDate
	if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidProjectDates {
		t.Fatalf("expected ErrInvalidProjectDates for equal dates, got %v", err)
	}

	input.FinishDate = input.StartDate.AddDate(0, 0, -1)
	if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidProjectDates {
		t.Fatalf("expected ErrInvalidProjectDates for finish before start, got %v", err)
	}
}

func TestProjectService_Create_DuplicateName(t *testing.T) {
	repo := &stubProjectRepo{}
	svc := NewProjectService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validProjectInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), validProjectInput()); err != domain.ErrDuplicateProject {
		t.Fatalf("expected ErrDuplicateProject, got %v", err)
	}
}

func TestProjectService_ListByBusiness(t *testing.T) {
	repo := &stubProjectRepo{}
	svc := NewProjectService(repo, zerolog.Nop())

	a := validProjectInput()
	b := validProjectInput()
	b.Name = "Bathroom refit"
	b.BusinessID = 4
	for _, in := range []ports.CreateProjectInput{a, b} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create %s: %v", in.Name, err)
		}
	}

	got, err := svc.ListByBusiness(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByBusiness returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Kitchen refit" {
		t.Fatalf("unexpected projects: %+v", got)
	}
}
