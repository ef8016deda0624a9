package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrDuplicateProject = errors.New("project name already exists")
var ErrInvalidProjectDates = errors.New("finish date must be after start date")

// Project is a remodeling job agreed between a business and a contractor.
type Project struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description" bson:"description"`
	BusinessID   int       `json:"business_id" bson:"business_id"`
	ContractorID int       `json:"contractor_id" bson:"contractor_id"`
	StartDate    time.Time `json:"start_date" bson:"start_date"`
	FinishDate   time.Time `json:"finish_date" bson:"finish_date"`
	Image        string    `json:"image" bson:"image"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
