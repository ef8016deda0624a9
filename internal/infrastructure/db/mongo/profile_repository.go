package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

const profilesCollection = "profiles"

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *p
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return &created, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Profile
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) FindAllByKind(ctx context.Context, kind domain.ProfileKind) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"kind": string(kind)})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []domain.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// EnsureIndexes creates the profile lookup index.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "kind", Value: 1}, {Key: "user_id", Value: 1}},
	})
	return err
}
