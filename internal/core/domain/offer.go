package domain

import (
	"errors"
	"time"
)

// OfferStatus represents the negotiation state of an offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
	OfferBought   OfferStatus = "bought"
)

// validOfferTransitions defines the allowed negotiation transitions.
var validOfferTransitions = map[OfferStatus][]OfferStatus{
	OfferPending:  {OfferAccepted, OfferRejected},
	OfferAccepted: {OfferBought},
}

var ErrOfferNotFound = errors.New("offer not found")

// CanTransitionTo reports whether a transition from the current offer
// status to next is valid.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	for _, allowed := range validOfferTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Offer is a purchase offer a buyer places on a listed property.
type Offer struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	PropertyID    string      `json:"property_id" bson:"property_id"`
	PropertyTitle string      `json:"property_title" bson:"property_title"`
	AgentEmail    string      `json:"agent_email" bson:"agent_email"`
	BuyerName     string      `json:"buyer_name" bson:"buyer_name"`
	BuyerEmail    string      `json:"buyer_email" bson:"buyer_email"`
	Amount        float64     `json:"amount" bson:"amount"`
	Currency      string      `json:"currency" bson:"currency"`
	BuyingDate    time.Time   `json:"buying_date" bson:"buying_date"`
	Status        OfferStatus `json:"status" bson:"status"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}
