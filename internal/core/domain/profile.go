package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileKind distinguishes the two public profile variants.
type ProfileKind string

const (
	ProfileContractor ProfileKind = "contractor"
	ProfileRemodeler  ProfileKind = "remodeler"
)

// Profile is the public-facing information card of a contractor or remodeler.
// Subscription is only meaningful for remodelers.
type Profile struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Kind         ProfileKind `json:"kind" bson:"kind"`
	UserID       string      `json:"user_id" bson:"user_id"`
	Description  string      `json:"description" bson:"description"`
	Phone        string      `json:"phone" bson:"phone"`
	Subscription string      `json:"subscription,omitempty" bson:"subscription,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}
