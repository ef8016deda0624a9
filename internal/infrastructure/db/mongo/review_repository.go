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

const reviewsCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *review
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &created, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var review domain.Review
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) FindAllByContractorID(ctx context.Context, contractorID int) ([]domain.Review, error) {
	return r.findAll(ctx, bson.M{"contractor_id": contractorID})
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *ReviewRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": review.ID}, bson.M{"$set": bson.M{
		"comment":    review.Comment,
		"image":      review.Image,
		"duration":   review.Duration,
		"updated_at": review.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// EnsureIndexes creates the review lookup index.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "contractor_id", Value: 1}},
	})
	return err
}
