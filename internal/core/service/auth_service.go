package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// AuthService implements sign-up and sign-in.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUsername
	}

	roles, err := s.resolveRoles(ctx, input.RoleTags)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Roles:        roles,
		Email:        input.Email,
		FirstName:    input.FirstName,
		PaternalName: input.PaternalName,
		MaternalName: input.MaternalName,
		Description:  input.Description,
		Phone:        input.Phone,
		Image:        input.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Create may still fail with ErrDuplicateUsername: the store's unique
	// index is the arbiter when two sign-ups race past the exists check.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int("roles", len(created.Roles)).Msg("user registered")
	return created, nil
}

func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Roles, time.Now().UTC())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user signed in")
	return user, token, nil
}

// resolveRoles maps requested tags to seeded roles. An empty request yields
// exactly the default role; the platform never creates a roleless user.
func (s *AuthService) resolveRoles(ctx context.Context, tags []string) ([]domain.Role, error) {
	if len(tags) == 0 {
		return []domain.Role{domain.DefaultRole}, nil
	}

	roles := make([]domain.Role, 0, len(tags))
	for _, tag := range tags {
		role, ok := domain.ParseRole(tag)
		if !ok {
			return nil, domain.ErrRoleNotFound
		}
		seeded, err := s.roles.FindByName(ctx, role)
		if err != nil {
			return nil, err
		}
		if !seeded {
			return nil, domain.ErrRoleNotFound
		}
		roles = append(roles, role)
	}
	return roles, nil
}
