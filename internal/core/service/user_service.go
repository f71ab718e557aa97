package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// UserService implements registration, role lookup and admin user management.
type UserService struct {
	repo     ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activity ports.ActivityRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, activity: activity, log: log}
}

// Register creates a user record, idempotently on email: re-registering an
// existing email is a no-op that reports a nil inserted id.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*ports.RegisterUserResult, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if existing, err := s.repo.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return &ports.RegisterUserResult{Message: "user already exist"}, nil
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:      in.Name,
		Email:     in.Email,
		Role:      domain.RoleNone,
		PhotoURL:  in.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// A concurrent registration can slip past the lookup; the unique
		// index makes it surface here with the same idempotent outcome.
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.RegisterUserResult{Message: "user already exist"}, nil
		}
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return &ports.RegisterUserResult{InsertedID: &created.ID}, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// RoleOf returns the privilege flags and record for the given email.
func (s *UserService) RoleOf(ctx context.Context, email string) (*ports.RoleResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &ports.RoleResult{
		Admin: user.Role == domain.RoleAdmin,
		Agent: user.Role == domain.RoleAgent,
		User:  user,
	}, nil
}

// UpdateRole upserts the role field of the identified record. Only the
// known role tags are accepted.
func (s *UserService) UpdateRole(ctx context.Context, actor, id, role string) error {
	if role != domain.RoleAdmin && role != domain.RoleAgent {
		return domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, id, role, true); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("role", role).Str("actor", actor).Msg("role updated")
	s.activity.Record(domain.ActivityEvent{
		Actor:   actor,
		Action:  "user.role_updated",
		Subject: id,
		At:      time.Now().UTC(),
	})
	return nil
}

func (s *UserService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(domain.ActivityEvent{
		Actor:   actor,
		Action:  "user.deleted",
		Subject: id,
		At:      time.Now().UTC(),
	})
	return nil
}
