package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

type wishlistService struct {
	repo ports.WishlistRepository
	log  zerolog.Logger
}

// NewWishlistService returns a WishlistService implementation.
func NewWishlistService(repo ports.WishlistRepository, log zerolog.Logger) ports.WishlistService {
	return &wishlistService{repo: repo, log: log}
}

func (s *wishlistService) Create(ctx context.Context, in ports.CreateWishlistInput) (*domain.WishlistItem, error) {
	w := &domain.WishlistItem{
		PropertyID:    in.PropertyID,
		PropertyTitle: in.PropertyTitle,
		ImageURL:      in.ImageURL,
		Location:      in.Location,
		PriceRange:    in.PriceRange,
		AgentName:     in.AgentName,
		UserEmail:     in.UserEmail,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, w)
	if err != nil {
		s.log.Error().Err(err).Str("user", in.UserEmail).Msg("failed to add wishlist item")
		return nil, err
	}
	w.ID = id
	return w, nil
}

func (s *wishlistService) List(ctx context.Context, userEmail string) ([]*domain.WishlistItem, error) {
	return s.repo.List(ctx, userEmail)
}

// Delete removes a bookmarked item. Only the user who saved it may remove it.
func (s *wishlistService) Delete(ctx context.Context, actor, id string) error {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if w.UserEmail != actor {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
