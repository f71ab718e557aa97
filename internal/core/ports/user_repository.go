package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the role field of the identified record. When upsert
	// is true a missing record is created with just the role set.
	UpdateRole(ctx context.Context, id, role string, upsert bool) error
	Delete(ctx context.Context, id string) error
}
