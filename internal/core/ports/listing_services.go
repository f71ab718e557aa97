package ports

import (
	"context"
	"time"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// CreateReviewInput carries the fields of a submitted review.
type CreateReviewInput struct {
	PropertyID    string
	PropertyTitle string
	ReviewerName  string
	ReviewerEmail string
	Rating        int
	Comment       string
}

// ReviewService defines use-case operations over reviews.
type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	List(ctx context.Context, propertyID string) ([]*domain.Review, error)
	Delete(ctx context.Context, actor, id string) error
}

// CreateWishlistInput carries the fields of a bookmarked property.
type CreateWishlistInput struct {
	PropertyID    string
	PropertyTitle string
	ImageURL      string
	Location      domain.Location
	PriceRange    domain.PriceRange
	AgentName     string
	UserEmail     string
}

// WishlistService defines use-case operations over wishlists.
type WishlistService interface {
	Create(ctx context.Context, in CreateWishlistInput) (*domain.WishlistItem, error)
	List(ctx context.Context, userEmail string) ([]*domain.WishlistItem, error)
	Delete(ctx context.Context, actor, id string) error
}

// CreateOfferInput carries the fields of a submitted purchase offer.
type CreateOfferInput struct {
	PropertyID    string
	PropertyTitle string
	AgentEmail    string
	BuyerName     string
	BuyerEmail    string
	Amount        float64
	Currency      string
	BuyingDate    time.Time
}

// OfferService defines use-case operations over purchase offers.
type OfferService interface {
	Create(ctx context.Context, in CreateOfferInput) (*domain.Offer, error)
	List(ctx context.Context, buyerEmail, agentEmail string) ([]*domain.Offer, error)
	UpdateStatus(ctx context.Context, actor, id string, status domain.OfferStatus) (*domain.Offer, error)
	Delete(ctx context.Context, actor, id string) error
}
