package ports

import (
	"context"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// SignUpInput carries everything needed to register a user. RoleTags may be
// empty; the service then assigns the platform default role.
type SignUpInput struct {
	Username     string
	Password     string
	RoleTags     []string
	Email        string
	FirstName    string
	PaternalName string
	MaternalName string
	Description  string
	Phone        string
	Image        string
}

// AuthService defines the identity use cases.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, username, password string) (*domain.User, string, error)
}
