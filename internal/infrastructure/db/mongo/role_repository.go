package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository stores the seeded role reference data. Roles are written
// once by the startup seeder and read on every sign-up.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

func (r *RoleRepository) FindByName(ctx context.Context, name domain.Role) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": string(name)})
	if err != nil {
		return false, fmt.Errorf("find role: %w", err)
	}
	return n > 0, nil
}

// EnsureExists upserts the role document, making seeding idempotent even
// when several instances start at once.
func (r *RoleRepository) EnsureExists(ctx context.Context, name domain.Role) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": string(name)},
		bson.M{"$setOnInsert": bson.M{"name": string(name), "created_at": time.Now().UTC().Unix()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert role: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique role name index.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
