package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// OfferRepository defines the persistence interface for purchase offers.
type OfferRepository interface {
	Create(ctx context.Context, o *domain.Offer) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Offer, error)
	// List returns all offers, optionally filtered by buyer or agent email.
	List(ctx context.Context, buyerEmail, agentEmail string) ([]*domain.Offer, error)
	UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) error
	Delete(ctx context.Context, id string) error
}
