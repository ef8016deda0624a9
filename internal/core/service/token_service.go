package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

const bearerScheme = "Bearer "

// JWTTokenService signs and verifies HS256 bearer tokens. Secret and
// lifetime are fixed at construction and never change afterwards.
type JWTTokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewJWTTokenService(secret string, lifetime time.Duration) *JWTTokenService {
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), lifetime: lifetime}
}

// Lifetime returns the configured token validity window.
func (s *JWTTokenService) Lifetime() time.Duration {
	return s.lifetime
}

func (s *JWTTokenService) Issue(subject string, roles []domain.Role, now time.Time) (string, error) {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}

	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": names,
		"iat":   now.Unix(),
		"exp":   now.Add(s.lifetime).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *JWTTokenService) Parse(token string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenBadSignature
	}

	out := &ports.Claims{}
	out.Subject, _ = claims["sub"].(string)

	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, v := range raw {
			if name, ok := v.(string); ok {
				out.Roles = append(out.Roles, domain.Role(name))
			}
		}
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// ExtractFromHeader strips the "Bearer " scheme. The scheme is matched
// case-sensitively, per RFC 6750's canonical form.
func (s *JWTTokenService) ExtractFromHeader(headerValue string) (string, bool) {
	if !strings.HasPrefix(headerValue, bearerScheme) {
		return "", false
	}
	token := headerValue[len(bearerScheme):]
	if token == "" {
		return "", false
	}
	return token, true
}
