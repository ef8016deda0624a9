package ports

import (
	"context"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// UserRepository defines the persistence boundary for users. The store is
// the final arbiter of username uniqueness: Create must return
// domain.ErrDuplicateUsername when its unique index rejects the insert,
// even if ExistsByUsername reported false moments earlier.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository stores the seeded role reference data.
type RoleRepository interface {
	FindByName(ctx context.Context, name domain.Role) (bool, error)
	EnsureExists(ctx context.Context, name domain.Role) error
}
