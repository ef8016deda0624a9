package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/api/metrics"
	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

const principalKey = "principal"

// Auth resolves the request's bearer token into a principal. A missing or
// invalid token leaves the request anonymous rather than failing here; the
// RBAC middleware decides whether anonymous access is acceptable. The
// rejection reason (malformed, bad signature, expired) is logged but never
// sent to the client.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := tokens.ExtractFromHeader(header)
			if !ok {
				return next(c)
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("rejected bearer token")
				return next(c)
			}

			c.Set(principalKey, &domain.Principal{
				Username: claims.Subject,
				Roles:    claims.Roles,
			})
			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal attached by Auth, if any.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}

func rejectionReason(err error) string {
	switch err {
	case domain.ErrTokenExpired:
		return "expired"
	case domain.ErrTokenBadSignature:
		return "bad_signature"
	default:
		return "malformed"
	}
}
