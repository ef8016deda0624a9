package domain

import (
	"errors"
	"time"
)

var ErrBusinessNotFound = errors.New("business not found")
var ErrDuplicateBusiness = errors.New("business name already exists")

// Business is a remodeling company registered by a remodeler.
type Business struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Address     string    `json:"address" bson:"address"`
	City        string    `json:"city" bson:"city"`
	Image       string    `json:"image" bson:"image"`
	Expertise   string    `json:"expertise" bson:"expertise"`
	RemodelerID int       `json:"remodeler_id" bson:"remodeler_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
