package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// RegisterUserInput carries the fields accepted on user registration.
// Password is optional; when present it is hashed before storage.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	PhotoURL string
}

// RegisterUserResult mirrors the historical registration response:
// InsertedID is nil when the email was already registered.
type RegisterUserResult struct {
	Message    string
	InsertedID *string
}

// RoleResult is the self-lookup view of a user's privileges.
type RoleResult struct {
	Admin bool
	Agent bool
	User  *domain.User
}

// UserService defines use-case operations over user records.
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*RegisterUserResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	RoleOf(ctx context.Context, email string) (*RoleResult, error)
	UpdateRole(ctx context.Context, actor, id, role string) error
	Delete(ctx context.Context, actor, id string) error
}
