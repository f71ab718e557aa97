package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a user-submitted comment and rating on a listed property.
type Review struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	PropertyID    string    `json:"property_id" bson:"property_id"`
	PropertyTitle string    `json:"property_title" bson:"property_title"`
	ReviewerName  string    `json:"reviewer_name" bson:"reviewer_name"`
	ReviewerEmail string    `json:"reviewer_email" bson:"reviewer_email"`
	Rating        int       `json:"rating" bson:"rating"`
	Comment       string    `json:"comment" bson:"comment"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
