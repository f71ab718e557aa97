package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PropertyService implements listing management for agents.
type PropertyService struct {
	repo     ports.PropertyRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, activity ports.ActivityRecorder, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, activity: activity, log: log}
}

// Create lists a new property. Fresh listings always start pending review.
func (s *PropertyService) Create(ctx context.Context, in ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	p := &domain.Property{
		Title:              in.Title,
		Description:        in.Description,
		ImageURL:           in.ImageURL,
		Location:           in.Location,
		PriceRange:         in.PriceRange,
		AgentName:          in.AgentName,
		AgentEmail:         in.AgentEmail,
		VerificationStatus: domain.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create property")
		return nil, err
	}
	p.ID = id

	s.log.Info().Str("property_id", id).Str("agent", in.AgentEmail).Msg("property listed")
	s.activity.Record(domain.ActivityEvent{
		Actor:   in.AgentEmail,
		Action:  "property.created",
		Subject: id,
		At:      now,
	})
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of properties matching the given filters.
func (s *PropertyService) List(ctx context.Context, in ports.ListPropertiesInput) (*ports.ListPropertiesResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListPropertiesFilter{
		VerificationStatus: in.VerificationStatus,
		AgentEmail:         in.AgentEmail,
		Search:             in.Search,
		Skip:               int64(page-1) * int64(limit),
		Limit:              int64(limit),
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListPropertiesResult{
		Properties: items,
		Total:      total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// Update patches the mutable fields of a listing. A verification status
// change must follow the moderation transition table.
func (s *PropertyService) Update(ctx context.Context, actor, id string, u ports.PropertyUpdate) (*domain.Property, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.VerificationStatus != nil && *u.VerificationStatus != current.VerificationStatus {
		if !current.VerificationStatus.CanTransitionTo(*u.VerificationStatus) {
			return nil, domain.ErrInvalidTransition
		}
	}

	if err := s.repo.Update(ctx, id, u); err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Actor:   actor,
		Action:  "property.updated",
		Subject: id,
		At:      time.Now().UTC(),
	})
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(domain.ActivityEvent{
		Actor:   actor,
		Action:  "property.deleted",
		Subject: id,
		At:      time.Now().UTC(),
	})
	return nil
}
