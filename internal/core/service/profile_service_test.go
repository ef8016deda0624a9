package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type stubProfileRepo struct {
	profiles []domain.Profile
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	created := *p
	created.ID = strconv.Itoa(len(r.profiles) + 1)
	r.profiles = append(r.profiles, created)
	return &created, nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	for i := range r.profiles {
		if r.profiles[i].ID == id {
			p := r.profiles[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) FindAllByKind(_ context.Context, kind domain.ProfileKind) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestProfileService_Create_ContractorDropsSubscription(t *testing.T) {
	svc := NewProfileService(&stubProfileRepo{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProfileInput{
		Kind:         domain.ProfileContractor,
		UserID:       "id-carlos",
		Description:  "tiling and drywall",
		Phone:        "5550001111",
		Subscription: "premium",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Subscription != "" {
		t.Fatalf("contractor profile must not carry a subscription: %q", created.Subscription)
	}
}

func TestProfileService_Create_RemodelerKeepsSubscription(t *testing.T) {
	svc := NewProfileService(&stubProfileRepo{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProfileInput{
		Kind:         domain.ProfileRemodeler,
		UserID:       "id-rosa",
		Subscription: "premium",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Subscription != "premium" {
		t.Fatalf("remodeler subscription lost: %q", created.Subscription)
	}
}

func TestProfileService_ListByKind(t *testing.T) {
	repo := &stubProfileRepo{}
	svc := NewProfileService(repo, zerolog.Nop())

	inputs := []ports.CreateProfileInput{
		{Kind: domain.ProfileContractor, UserID: "id-a"},
		{Kind: domain.ProfileRemodeler, UserID: "id-b"},
		{Kind: domain.ProfileContractor, UserID: "id-c"},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create %s: %v", in.UserID, err)
		}
	}

	contractors, err := svc.ListByKind(context.Background(), domain.ProfileContractor)
	if err != nil {
		t.Fatalf("ListByKind returned error: %v", err)
	}
	if len(contractors) != 2 {
		t.Fatalf("expected 2 contractor profiles, got %d", len(contractors))
	}
}
