package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// ListPropertiesFilter narrows the property listing query.
type ListPropertiesFilter struct {
	VerificationStatus string
	AgentEmail         string
	// Search matches title or city, case-insensitive.
	Search string
	Skip   int64
	Limit  int64
}

// PropertyUpdate carries the mutable listing fields for a patch. Nil
// pointers leave the stored value untouched.
type PropertyUpdate struct {
	Title              *string
	Description        *string
	ImageURL           *string
	Location           *domain.Location
	PriceRange         *domain.PriceRange
	VerificationStatus *domain.VerificationStatus
	Advertised         *bool
}

// PropertyRepository defines the persistence interface for listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, f ListPropertiesFilter) ([]*domain.Property, int64, error)
	Update(ctx context.Context, id string, u PropertyUpdate) error
	Delete(ctx context.Context, id string) error
}
