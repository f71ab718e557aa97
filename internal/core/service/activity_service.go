package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *activityService) Process(ctx context.Context, e domain.ActivityEvent) error {
	if err := s.repo.Create(ctx, &e); err != nil {
		s.log.Error().Err(err).Str("action", e.Action).Msg("failed to persist activity event")
		return err
	}
	return nil
}

func (s *activityService) List(ctx context.Context, actor string, limit int64) ([]*domain.ActivityEvent, error) {
	return s.repo.List(ctx, actor, limit)
}
