package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// CreatePropertyInput carries all data needed to list a new property.
type CreatePropertyInput struct {
	Title       string
	Description string
	ImageURL    string
	Location    domain.Location
	PriceRange  domain.PriceRange
	AgentName   string
	AgentEmail  string
}

// ListPropertiesInput carries the query parameters of the list endpoint.
type ListPropertiesInput struct {
	VerificationStatus string
	AgentEmail         string
	Search             string
	Page               int
	Limit              int
}

// ListPropertiesResult is the paginated list view.
type ListPropertiesResult struct {
	Properties []*domain.Property
	Total      int64
	Page       int
	Limit      int
}

// PropertyService defines use-case operations over listings.
type PropertyService interface {
	Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, in ListPropertiesInput) (*ListPropertiesResult, error)
	Update(ctx context.Context, actor, id string, u PropertyUpdate) (*domain.Property, error)
	Delete(ctx context.Context, actor, id string) error
}
