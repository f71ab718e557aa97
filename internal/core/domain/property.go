package domain

import (
	"errors"
	"time"
)

// VerificationStatus represents the moderation state of a listing.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// validVerifications defines the allowed moderation transitions.
var validVerifications = map[VerificationStatus][]VerificationStatus{
	VerificationPending: {VerificationVerified, VerificationRejected},
}

var ErrPropertyNotFound = errors.New("property not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a moderation transition is valid.
func (s VerificationStatus) CanTransitionTo(next VerificationStatus) bool {
	for _, allowed := range validVerifications[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Location describes where a listed property is.
type Location struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	Area    string `json:"area,omitempty" bson:"area,omitempty"`
}

// PriceRange is the advertised asking band for a listing.
type PriceRange struct {
	Min      float64 `json:"min" bson:"min"`
	Max      float64 `json:"max" bson:"max"`
	Currency string  `json:"currency" bson:"currency"`
}

// Property is the listing aggregate root.
type Property struct {
	ID                 string             `json:"id" bson:"_id,omitempty"`
	Title              string             `json:"title" bson:"title"`
	Description        string             `json:"description" bson:"description"`
	ImageURL           string             `json:"image_url" bson:"image_url"`
	Location           Location           `json:"location" bson:"location"`
	PriceRange         PriceRange         `json:"price_range" bson:"price_range"`
	AgentName          string             `json:"agent_name" bson:"agent_name"`
	AgentEmail         string             `json:"agent_email" bson:"agent_email"`
	VerificationStatus VerificationStatus `json:"verification_status" bson:"verification_status"`
	Advertised         bool               `json:"advertised" bson:"advertised"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
