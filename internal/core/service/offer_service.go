package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

type offerService struct {
	repo     ports.OfferRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

// NewOfferService returns an OfferService implementation.
func NewOfferService(repo ports.OfferRepository, activity ports.ActivityRecorder, log zerolog.Logger) ports.OfferService {
	return &offerService{repo: repo, activity: activity, log: log}
}

func (s *offerService) Create(ctx context.Context, in ports.CreateOfferInput) (*domain.Offer, error) {
	now := time.Now().UTC()
	o := &domain.Offer{
		PropertyID:    in.PropertyID,
		PropertyTitle: in.PropertyTitle,
		AgentEmail:    in.AgentEmail,
		BuyerName:     in.BuyerName,
		BuyerEmail:    in.BuyerEmail,
		Amount:        in.Amount,
		Currency:      in.Currency,
		BuyingDate:    in.BuyingDate,
		Status:        domain.OfferPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		s.log.Error().Err(err).Str("property_id", in.PropertyID).Msg("failed to create offer")
		return nil, err
	}
	o.ID = id

	s.activity.Record(domain.ActivityEvent{
		Actor:   in.BuyerEmail,
		Action:  "offer.created",
		Subject: id,
		At:      now,
	})
	return o, nil
}

func (s *offerService) List(ctx context.Context, buyerEmail, agentEmail string) ([]*domain.Offer, error) {
	return s.repo.List(ctx, buyerEmail, agentEmail)
}

// UpdateStatus applies an offer decision, enforcing the negotiation
// transition table.
func (s *offerService) UpdateStatus(ctx context.Context, actor, id string, status domain.OfferStatus) (*domain.Offer, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.log.Info().Str("offer_id", id).Str("status", string(status)).Str("actor", actor).Msg("offer status updated")
	s.activity.Record(domain.ActivityEvent{
		Actor:   actor,
		Action:  "offer." + string(status),
		Subject: id,
		At:      time.Now().UTC(),
	})

	o.Status = status
	return o, nil
}

// Delete withdraws an offer. Only the buyer who placed it may delete it.
func (s *offerService) Delete(ctx context.Context, actor, id string) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o.BuyerEmail != actor {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
