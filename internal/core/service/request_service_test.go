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

type stubRequestRepo struct {
	requests []domain.ProjectRequest
}

func (r *stubRequestRepo) Create(_ context.Context, pr *domain.ProjectRequest) (*domain.ProjectRequest, error) {
	created := *pr
	created.ID = strconv.Itoa(len(r.requests) + 1)
	r.requests = append(r.requests, created)
	return &created, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.ProjectRequest, error) {
	for i := range r.requests {
		if r.requests[i].ID == id {
			pr := r.requests[i]
			return &pr, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (r *stubRequestRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for i := range r.requests {
		if r.requests[i].Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRequestRepo) FindAllByBusinessID(_ context.Context, businessID int) ([]domain.ProjectRequest, error) {
	var out []domain.ProjectRequest
	for _, pr := range r.requests {
		if pr.BusinessID == businessID {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (r *stubRequestRepo) FindAllByContractorID(_ context.Context, contractorID int) ([]domain.ProjectRequest, error) {
	var out []domain.ProjectRequest
	for _, pr := range r.requests {
		if pr.ContractorID == contractorID {
			out = append(out, pr)
		}
	}
	return out, nil
}

type recordingEnqueuer struct {
	notifications []ports.RequestNotification
}

func (e *recordingEnqueuer) Enqueue(n ports.RequestNotification) {
	e.notifications = append(e.notifications, n)
}

func validRequestInput() ports.CreateRequestInput {
	return ports.CreateRequestInput{
		Name:         "Loft conversion",
		Surname:      "Lopez",
		Email:        "maria@example.com",
		City:         "Guadalajara",
		BusinessID:   2,
		ContractorID: 5,
		Deadline:     time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		Rooms:        3,
		Budget:       25000,
	}
}

func TestRequestService_Create_EnqueuesNotification(t *testing.T) {
	enq := &recordingEnqueuer{}
	svc := NewRequestService(&stubRequestRepo{}, enq, zerolog.Nop())

	created, err := svc.Create(context.Background(), validRequestInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	if len(enq.notifications) != 1 {
		t.Fatalf("expected one enqueued notification, got %d", len(enq.notifications))
	}
	n := enq.notifications[0]
	if n.RequestID != created.ID || n.ContractorID != 5 || n.Email != "maria@example.com" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestRequestService_Create_Duplicate(t *testing.T) {
	enq := &recordingEnqueuer{}
	svc := NewRequestService(&stubRequestRepo{}, enq, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validRequestInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), validRequestInput()); err != domain.ErrDuplicateRequest {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
	if len(enq.notifications) != 1 {
		t.Fatalf("failed create must not enqueue, got %d notifications", len(enq.notifications))
	}
}

func TestRequestService_Create_NilEnqueuer(t *testing.T) {
	svc := NewRequestService(&stubRequestRepo{}, nil, zerolog.Nop())
	if _, err := svc.Create(context.Background(), validRequestInput()); err != nil {
		t.Fatalf("Create without enqueuer failed: %v", err)
	}
}

func TestRequestService_ListByContractor(t *testing.T) {
	repo := &stubRequestRepo{}
	svc := NewRequestService(repo, nil, zerolog.Nop())

	a := validRequestInput()
	b := validRequestInput()
	b.Name = "Garage rework"
	b.ContractorID = 8
	for _, in := range []ports.CreateRequestInput{a, b} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create %s: %v", in.Name, err)
		}
	}

	got, err := svc.ListByContractor(context.Background(), 8)
	if err != nil {
		t.Fatalf("ListByContractor returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Garage rework" {
		t.Fatalf("unexpected requests: %+v", got)
	}
}
