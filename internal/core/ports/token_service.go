package ports

import (
	"context"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// IssueTokenInput carries the caller-supplied identity claim. Password is
// only consulted when credential-gated issuance is enabled.
type IssueTokenInput struct {
	Email    string
	Password string
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	IssueToken(ctx context.Context, in IssueTokenInput) (string, error)
	Verify(token string) (*domain.IdentityClaim, error)
}
