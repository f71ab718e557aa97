package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

type stubOfferRepo struct {
	byID   map[string]*domain.Offer
	nextID int
}

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{byID: make(map[string]*domain.Offer)}
}

func (r *stubOfferRepo) Create(_ context.Context, o *domain.Offer) (string, error) {
	r.nextID++
	id := "offer-" + strconv.Itoa(r.nextID)
	clone := *o
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubOfferRepo) FindByID(_ context.Context, id string) (*domain.Offer, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOfferRepo) List(_ context.Context, buyerEmail, agentEmail string) ([]*domain.Offer, error) {
	var offers []*domain.Offer
	for _, o := range r.byID {
		if buyerEmail != "" && o.BuyerEmail != buyerEmail {
			continue
		}
		if agentEmail != "" && o.AgentEmail != agentEmail {
			continue
		}
		clone := *o
		offers = append(offers, &clone)
	}
	return offers, nil
}

func (r *stubOfferRepo) UpdateStatus(_ context.Context, id string, status domain.OfferStatus) error {
	o, ok := r.byID[id]
	if !ok {
		return domain.ErrOfferNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOfferRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrOfferNotFound
	}
	delete(r.byID, id)
	return nil
}

func makeOffer(t *testing.T, svc ports.OfferService, buyer string) *domain.Offer {
	t.Helper()
	o, err := svc.Create(context.Background(), ports.CreateOfferInput{
		PropertyID: "prop-1",
		AgentEmail: "dana@agency.com",
		BuyerName:  "Bob",
		BuyerEmail: buyer,
		Amount:     250_000,
		Currency:   "USD",
		BuyingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return o
}

func TestOfferService_Create_StartsPending(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), &stubRecorder{}, zerolog.Nop())

	o := makeOffer(t, svc, "bob@x.com")
	if o.Status != domain.OfferPending {
		t.Fatalf("new offer should be pending, got %s", o.Status)
	}
}

func TestOfferService_StatusTransitions(t *testing.T) {
	svc := NewOfferService(newStubOfferRepo(), &stubRecorder{}, zerolog.Nop())
	o := makeOffer(t, svc, "bob@x.com")

	// pending → bought skips acceptance.
	if _, err := svc.UpdateStatus(context.Background(), "dana@agency.com", o.ID, domain.OfferBought); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("pending→bought should be invalid, got %v", err)
	}

	accepted, err := svc.UpdateStatus(context.Background(), "dana@agency.com", o.ID, domain.OfferAccepted)
	if err != nil {
		t.Fatalf("pending→accepted failed: %v", err)
	}
	if accepted.Status != domain.OfferAccepted {
		t.Fatalf("status not applied: %s", accepted.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), "dana@agency.com", o.ID, domain.OfferRejected); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("accepted→rejected should be invalid, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "dana@agency.com", o.ID, domain.OfferBought); err != nil {
		t.Fatalf("accepted→bought failed: %v", err)
	}
}

func TestOfferService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubOfferRepo()
	svc := NewOfferService(repo, &stubRecorder{}, zerolog.Nop())
	o := makeOffer(t, svc, "bob@x.com")

	if err := svc.Delete(context.Background(), "mallory@x.com", o.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "bob@x.com", o.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("offer not removed")
	}
}
