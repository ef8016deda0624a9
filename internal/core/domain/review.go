package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrInvalidReviewTarget = errors.New("contractor and project ids must be positive")

// Review is left by a remodeler about a contractor after a project ends.
type Review struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ContractorID int       `json:"contractor_id" bson:"contractor_id"`
	ProjectID    int       `json:"project_id" bson:"project_id"`
	Duration     string    `json:"duration" bson:"duration"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment" bson:"comment"`
	Image        string    `json:"image" bson:"image"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidateReview checks the invariants a review must satisfy before persisting.
func ValidateReview(contractorID, projectID, rating int) error {
	if contractorID < 1 || projectID < 1 {
		return ErrInvalidReviewTarget
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
