package domain

import (
	"errors"
	"time"
)

var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistItem bookmarks a property for a user.
type WishlistItem struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	PropertyID    string     `json:"property_id" bson:"property_id"`
	PropertyTitle string     `json:"property_title" bson:"property_title"`
	ImageURL      string     `json:"image_url" bson:"image_url"`
	Location      Location   `json:"location" bson:"location"`
	PriceRange    PriceRange `json:"price_range" bson:"price_range"`
	AgentName     string     `json:"agent_name" bson:"agent_name"`
	UserEmail     string     `json:"user_email" bson:"user_email"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
}
