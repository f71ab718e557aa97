package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// WishlistRepository defines the persistence interface for wishlist items.
type WishlistRepository interface {
	Create(ctx context.Context, w *domain.WishlistItem) (string, error)
	// List returns all wishlist items, optionally filtered by user email.
	List(ctx context.Context, userEmail string) ([]*domain.WishlistItem, error)
	FindByID(ctx context.Context, id string) (*domain.WishlistItem, error)
	Delete(ctx context.Context, id string) error
}
