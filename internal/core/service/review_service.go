package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

type reviewService struct {
	repo ports.ReviewRepository
	log  zerolog.Logger
}

// NewReviewService returns a ReviewService implementation.
func NewReviewService(repo ports.ReviewRepository, log zerolog.Logger) ports.ReviewService {
	return &reviewService{repo: repo, log: log}
}

func (s *reviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	r := &domain.Review{
		PropertyID:    in.PropertyID,
		PropertyTitle: in.PropertyTitle,
		ReviewerName:  in.ReviewerName,
		ReviewerEmail: in.ReviewerEmail,
		Rating:        in.Rating,
		Comment:       in.Comment,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		s.log.Error().Err(err).Str("property_id", in.PropertyID).Msg("failed to create review")
		return nil, err
	}
	r.ID = id
	return r, nil
}

func (s *reviewService) List(ctx context.Context, propertyID string) ([]*domain.Review, error) {
	return s.repo.List(ctx, propertyID)
}

// Delete removes a review. Only the author may delete their own review.
func (s *reviewService) Delete(ctx context.Context, actor, id string) error {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if r.ReviewerEmail != actor {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
