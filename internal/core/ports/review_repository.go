package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// ReviewRepository defines the persistence interface for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (string, error)
	// List returns all reviews, optionally filtered by property id.
	List(ctx context.Context, propertyID string) ([]*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
