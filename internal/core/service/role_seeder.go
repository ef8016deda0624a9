package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// SeedRoles reconciles the closed role set against the store: each missing
// role is created, existing ones are left untouched. Safe to run on every
// startup.
func SeedRoles(ctx context.Context, roles ports.RoleRepository, logger zerolog.Logger) error {
	for _, role := range domain.AllRoles {
		if err := roles.EnsureExists(ctx, role); err != nil {
			return fmt.Errorf("seed role %s: %w", role, err)
		}
	}
	logger.Info().Int("count", len(domain.AllRoles)).Msg("roles seeded")
	return nil
}
