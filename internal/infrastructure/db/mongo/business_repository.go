package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

const businessesCollection = "businesses"

type BusinessRepository struct {
	coll *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{coll: db.Collection(businessesCollection)}
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *b
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateBusiness
		}
		return nil, fmt.Errorf("insert business: %w", err)
	}
	return &created, nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Business
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return &b, nil
}

func (r *BusinessRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("count businesses: %w", err)
	}
	return n > 0, nil
}

func (r *BusinessRepository) FindAll(ctx context.Context) ([]domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []domain.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("decode businesses: %w", err)
	}
	return businesses, nil
}

// EnsureIndexes creates the unique business name index.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
