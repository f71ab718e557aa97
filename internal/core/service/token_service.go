package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// identityClaims is the wire shape of a session token payload.
type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. The secret, TTL
// and clock are injected so tests can pin them.
type TokenService struct {
	users             ports.UserRepository
	secret            []byte
	ttl               time.Duration
	requireCredential bool
	now               func() time.Time
}

func NewTokenService(users ports.UserRepository, secret string, ttl time.Duration, requireCredential bool) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		users:             users,
		secret:            []byte(secret),
		ttl:               ttl,
		requireCredential: requireCredential,
		now:               time.Now,
	}
}

// IssueToken signs a session token for the given identity claim. When
// credential-gated issuance is enabled the caller must present the password
// of a registered account; otherwise the claim is signed as supplied.
func (s *TokenService) IssueToken(ctx context.Context, in ports.IssueTokenInput) (string, error) {
	if in.Email == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.requireCredential {
		user, err := s.users.FindByEmail(ctx, in.Email)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return "", domain.ErrInvalidCredentials
			}
			return "", err
		}
		if user.PasswordHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
			return "", domain.ErrInvalidCredentials
		}
	}

	return s.sign(in.Email)
}

func (s *TokenService) sign(email string) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrTokenSigning
	}

	now := s.now().UTC()
	claims := identityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity
// claim. All failure modes collapse into ErrInvalidToken; the caller must
// re-authenticate regardless of the cause.
func (s *TokenService) Verify(token string) (*domain.IdentityClaim, error) {
	claims := &identityClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.IdentityClaim{Email: claims.Email}, nil
}
