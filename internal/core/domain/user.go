package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
	// RoleNone marks a registered user with no elevated privileges.
	RoleNone = ""
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exist")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("forbidden access")
var ErrInvalidRole = errors.New("invalid role")

// User models a registered account. Role is the sole authorization
// attribute; it is compared with exact, case-sensitive equality.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IdentityClaim is the payload embedded in a session token. It is created
// at issuance, decoded by the auth middleware, and never persisted.
type IdentityClaim struct {
	Email string `json:"email"`
}
