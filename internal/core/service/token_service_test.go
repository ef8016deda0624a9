package service

import (
	"strings"
	"testing"
	"time"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

func TestJWTTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)
	now := time.Now().UTC()

	token, err := svc.Issue("alice", []domain.Role{domain.RoleRemodeler, domain.RoleAdmin}, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(claims.Roles))
	}
	roleSet := map[domain.Role]bool{}
	for _, r := range claims.Roles {
		roleSet[r] = true
	}
	if !roleSet[domain.RoleRemodeler] || !roleSet[domain.RoleAdmin] {
		t.Fatalf("role set mismatch: %v", claims.Roles)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestJWTTokenService_Expired(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Minute)

	// Issued long enough ago that the token is already past expiry.
	token, err := svc.Issue("bob", []domain.Role{domain.RoleContractor}, time.Now().UTC().Add(-2*time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Parse(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTTokenService_WrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour)
	verifier := NewJWTTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("carol", []domain.Role{domain.RoleContractor}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Parse(token); err != domain.ErrTokenBadSignature {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestJWTTokenService_TamperedPayload(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token, err := svc.Issue("dave", []domain.Role{domain.RoleContractor}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Splice in the payload of a different token; it decodes fine, but the
	// signature no longer covers it.
	other, err := svc.Issue("mallory", []domain.Role{domain.RoleAdmin}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	if len(parts) != 3 || len(otherParts) != 3 {
		t.Fatalf("expected compact JWTs")
	}
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	if _, err := svc.Parse(tampered); err != domain.ErrTokenBadSignature {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestJWTTokenService_Malformed(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Parse(token); err != domain.ErrTokenMalformed {
			t.Fatalf("Parse(%q): expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestJWTTokenService_ExtractFromHeader(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"", "", false},
		{"Bearer ", "", false},
		{"bearer abc", "", false}, // scheme is case-sensitive
		{"Basic abc", "", false},
		{"abc.def.ghi", "", false},
	}

	for _, tc := range cases {
		token, ok := svc.ExtractFromHeader(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Fatalf("ExtractFromHeader(%q) = (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}

func TestJWTTokenService_DefaultLifetime(t *testing.T) {
	svc := NewJWTTokenService("secret", 0)
	if svc.Lifetime() != 24*time.Hour {
		t.Fatalf("expected 24h default lifetime, got %v", svc.Lifetime())
	}
}
