package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	r.nextID++
	created := *rv
	created.ID = strconv.Itoa(r.nextID)
	r.reviews[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	if rv, ok := r.reviews[id]; ok {
		clone := *rv
		return &clone, nil
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) FindAllByContractorID(_ context.Context, contractorID int) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.ContractorID == contractorID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) FindAll(_ context.Context) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		out = append(out, *rv)
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, rv *domain.Review) error {
	if _, ok := r.reviews[rv.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	clone := *rv
	r.reviews[rv.ID] = &clone
	return nil
}

func validReviewInput() ports.CreateReviewInput {
	return ports.CreateReviewInput{
		ContractorID: 5,
		ProjectID:    11,
		Duration:     "6 weeks",
		Rating:       4,
		Comment:      "solid work",
	}
}

func TestReviewService_Create(t *testing.T) {
	svc := NewReviewService(newStubReviewRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), validReviewInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.Rating != 4 {
		t.Fatalf("unexpected review: %+v", created)
	}
}

func TestReviewService_Create_RatingBounds(t *testing.T) {
	svc := NewReviewService(newStubReviewRepo(), zerolog.Nop())

	for _, rating := range []int{0, -1, 6} {
		input := validReviewInput()
		input.Rating = rating
		if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	for rating := 1; rating <= 5; rating++ {
		input := validReviewInput()
		input.Rating = rating
		if _, err := svc.Create(context.Background(), input); err != nil {
			t.Fatalf("rating %d: unexpected error %v", rating, err)
		}
	}
}

func TestReviewService_Create_InvalidTarget(t *testing.T) {
	svc := NewReviewService(newStubReviewRepo(), zerolog.Nop())

	input := validReviewInput()
	input.ContractorID = 0
	if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidReviewTarget {
		t.Fatalf("expected ErrInvalidReviewTarget for missing contractor, got %v", err)
	}

	input = validReviewInput()
	input.ProjectID = 0
	if _, err := svc.Create(context.Background(), input); err != domain.ErrInvalidReviewTarget {
		t.Fatalf("expected ErrInvalidReviewTarget for missing project, got %v", err)
	}
}

func TestReviewService_Update_Partial(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validReviewInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	comment := "even better after follow-up"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateReviewInput{Comment: &comment})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Comment != comment {
		t.Fatalf("comment not updated: %q", updated.Comment)
	}
	if updated.Duration != created.Duration || updated.Rating != created.Rating {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards")
	}
}

func TestReviewService_Update_NotFound(t *testing.T) {
	svc := NewReviewService(newStubReviewRepo(), zerolog.Nop())

	comment := "ghost"
	if _, err := svc.Update(context.Background(), "404", ports.UpdateReviewInput{Comment: &comment}); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
