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

const requestsCollection = "project_requests"

type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ProjectRequest) (*domain.ProjectRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *req
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("insert project request: %w", err)
	}
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ProjectRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.ProjectRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find project request: %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("count project requests: %w", err)
	}
	return n > 0, nil
}

func (r *RequestRepository) FindAllByBusinessID(ctx context.Context, businessID int) ([]domain.ProjectRequest, error) {
	return r.findAll(ctx, bson.M{"business_id": businessID})
}

func (r *RequestRepository) FindAllByContractorID(ctx context.Context, contractorID int) ([]domain.ProjectRequest, error) {
	return r.findAll(ctx, bson.M{"contractor_id": contractorID})
}

func (r *RequestRepository) findAll(ctx context.Context, filter bson.M) ([]domain.ProjectRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list project requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []domain.ProjectRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode project requests: %w", err)
	}
	return requests, nil
}

// EnsureIndexes creates the project request indexes.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
		{Keys: bson.D{{Key: "contractor_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
