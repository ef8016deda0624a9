package domain

import (
	"errors"
	"time"
)

// Role is a closed enumeration of the authorities a user can hold.
type Role string

const (
	RoleAdmin      Role = "ROLE_ADMIN"
	RoleRemodeler  Role = "ROLE_REMODELER"
	RoleContractor Role = "ROLE_CONTRACTOR"

	// RolePublic is a route marker, never assigned to a user: an endpoint
	// requiring it accepts anonymous requests.
	RolePublic Role = "ROLE_PUBLIC"
)

// DefaultRole is assigned when a sign-up supplies no roles. This is a
// business policy of the platform, not a fallback for bad input.
const DefaultRole = RoleContractor

// AllRoles lists every assignable role; the seeder reconciles this set
// against the role collection at startup.
var AllRoles = []Role{RoleAdmin, RoleRemodeler, RoleContractor}

// ParseRole maps a role tag to its enum value.
func ParseRole(tag string) (Role, bool) {
	switch Role(tag) {
	case RoleAdmin, RoleRemodeler, RoleContractor:
		return Role(tag), true
	}
	return "", false
}

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrRoleNotFound       = errors.New("role not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// User is the IAM aggregate root. PasswordHash never leaves the process:
// it is excluded from JSON and only compared through the hasher.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Roles        []Role    `json:"roles" bson:"roles"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	FirstName    string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	PaternalName string    `json:"paternal_name,omitempty" bson:"paternal_name,omitempty"`
	MaternalName string    `json:"maternal_name,omitempty" bson:"maternal_name,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Principal is the runtime projection of a validated token: it lives for
// one request and is rebuilt from claims without touching the store.
type Principal struct {
	Username string
	Roles    []Role
}

// HasAnyRole reports whether the principal's authority set intersects the
// required set.
func (p *Principal) HasAnyRole(required ...Role) bool {
	for _, want := range required {
		for _, have := range p.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
