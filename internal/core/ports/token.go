package ports

import (
	"time"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// Claims is the decoded payload of a valid token.
type Claims struct {
	Subject   string
	Roles     []domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService signs and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for subject valid from now until now plus the
	// configured lifetime.
	Issue(subject string, roles []domain.Role, now time.Time) (string, error)
	// Parse verifies signature and expiry. It returns domain.ErrTokenMalformed,
	// domain.ErrTokenBadSignature or domain.ErrTokenExpired on failure.
	Parse(token string) (*Claims, error)
	// ExtractFromHeader strips the "Bearer " scheme from an Authorization
	// header value. ok is false when the header is absent, uses another
	// scheme, or carries no token.
	ExtractFromHeader(headerValue string) (token string, ok bool)
}

// PasswordHasher is a one-way adaptive hash over plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A mismatch is a
	// false return, never an error.
	Verify(plaintext, digest string) bool
}
