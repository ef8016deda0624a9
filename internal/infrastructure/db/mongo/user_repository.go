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

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Roles        []string           `bson:"roles"`
	Email        string             `bson:"email,omitempty"`
	FirstName    string             `bson:"first_name,omitempty"`
	PaternalName string             `bson:"paternal_name,omitempty"`
	MaternalName string             `bson:"maternal_name,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	Image        string             `bson:"image,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// Create inserts the user. The unique index on username is the last word on
// duplicates: a concurrent sign-up that slipped past ExistsByUsername still
// surfaces here as domain.ErrDuplicateUsername.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}

	doc := mongoUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Roles:        roles,
		Email:        user.Email,
		FirstName:    user.FirstName,
		PaternalName: user.PaternalName,
		MaternalName: user.MaternalName,
		Description:  user.Description,
		Phone:        user.Phone,
		Image:        user.Image,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get the assigned ID
	return r.FindByUsername(ctx, user.Username)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	roles := make([]domain.Role, len(mu.Roles))
	for i, name := range mu.Roles {
		roles[i] = domain.Role(name)
	}

	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		Roles:        roles,
		Email:        mu.Email,
		FirstName:    mu.FirstName,
		PaternalName: mu.PaternalName,
		MaternalName: mu.MaternalName,
		Description:  mu.Description,
		Phone:        mu.Phone,
		Image:        mu.Image,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique username index that arbitrates the
// sign-up race.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
