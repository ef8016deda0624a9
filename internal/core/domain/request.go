package domain

import (
	"errors"
	"time"
)

var ErrRequestNotFound = errors.New("project request not found")
var ErrDuplicateRequest = errors.New("project request name already exists")

// ProjectRequest is a remodeling job offer sent by a business to a contractor.
// Creating one triggers a notification to the contractor.
type ProjectRequest struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Surname      string    `json:"surname" bson:"surname"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Address      string    `json:"address" bson:"address"`
	City         string    `json:"city" bson:"city"`
	Description  string    `json:"description" bson:"description"`
	BusinessID   int       `json:"business_id" bson:"business_id"`
	ContractorID int       `json:"contractor_id" bson:"contractor_id"`
	Deadline     time.Time `json:"deadline" bson:"deadline"`
	Rooms        int       `json:"rooms" bson:"rooms"`
	Budget       float64   `json:"budget" bson:"budget"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
