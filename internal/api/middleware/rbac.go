package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// RBAC enforces role-based access control on a route.
//
// Semantics of the required set:
//   - contains domain.RolePublic: anonymous access allowed, always passes
//   - empty: any authenticated principal passes
//   - otherwise: the principal's roles must intersect the required set
//
// An anonymous request on a non-public route is rejected with 401; an
// authenticated principal lacking every required role gets 403.
func RBAC(required ...domain.Role) echo.MiddlewareFunc {
	public := false
	for _, r := range required {
		if r == domain.RolePublic {
			public = true
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if public {
				return next(c)
			}

			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			}

			if len(required) > 0 && !principal.HasAnyRole(required...) {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			return next(c)
		}
	}
}
