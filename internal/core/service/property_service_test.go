package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPropertyRepo struct {
	byID   map[string]*domain.Property
	nextID int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (string, error) {
	r.nextID++
	id := "prop-" + strconv.Itoa(r.nextID)
	clone := *p
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubPropertyRepo) List(_ context.Context, f ports.ListPropertiesFilter) ([]*domain.Property, int64, error) {
	var matched []*domain.Property
	for _, p := range r.byID {
		if f.VerificationStatus != "" && string(p.VerificationStatus) != f.VerificationStatus {
			continue
		}
		if f.AgentEmail != "" && p.AgentEmail != f.AgentEmail {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Title), needle) &&
				!strings.Contains(strings.ToLower(p.Location.City), needle) {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}

	total := int64(len(matched))
	if f.Skip >= total {
		return nil, total, nil
	}
	end := f.Skip + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Skip:end], total, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, id string, u ports.PropertyUpdate) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.VerificationStatus != nil {
		p.VerificationStatus = *u.VerificationStatus
	}
	if u.Advertised != nil {
		p.Advertised = *u.Advertised
	}
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestPropertyService_Create_StartsPending(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubRecorder{}, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Title:      "Lakeside Villa",
		AgentName:  "Dana",
		AgentEmail: "dana@agency.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if p.VerificationStatus != domain.VerificationPending {
		t.Fatalf("new listing should be pending, got %s", p.VerificationStatus)
	}
}

func TestPropertyService_Update_ValidatesTransition(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubRecorder{}, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreatePropertyInput{Title: "Flat", AgentEmail: "dana@agency.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	verified := domain.VerificationVerified
	updated, err := svc.Update(context.Background(), "dana@agency.com", p.ID, ports.PropertyUpdate{VerificationStatus: &verified})
	if err != nil {
		t.Fatalf("pending→verified should be allowed: %v", err)
	}
	if updated.VerificationStatus != domain.VerificationVerified {
		t.Fatalf("status not applied: %s", updated.VerificationStatus)
	}

	rejected := domain.VerificationRejected
	if _, err := svc.Update(context.Background(), "dana@agency.com", p.ID, ports.PropertyUpdate{VerificationStatus: &rejected}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("verified→rejected should be invalid, got %v", err)
	}
}

func TestPropertyService_Update_NotFound(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), &stubRecorder{}, zerolog.Nop())

	title := "x"
	if _, err := svc.Update(context.Background(), "dana@agency.com", "missing", ports.PropertyUpdate{Title: &title}); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_List_PaginationDefaults(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubRecorder{}, zerolog.Nop())

	for i := 0; i < 25; i++ {
		if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{
			Title:      "House " + strconv.Itoa(i),
			AgentEmail: "dana@agency.com",
		}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	result, err := svc.List(context.Background(), ports.ListPropertiesInput{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Page != 1 || result.Limit != defaultPageLimit {
		t.Fatalf("unexpected defaults: page=%d limit=%d", result.Page, result.Limit)
	}
	if len(result.Properties) != defaultPageLimit {
		t.Fatalf("expected %d items, got %d", defaultPageLimit, len(result.Properties))
	}
	if result.Total != 25 {
		t.Fatalf("expected total 25, got %d", result.Total)
	}

	capped, err := svc.List(context.Background(), ports.ListPropertiesInput{Limit: 10_000})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if capped.Limit != maxPageLimit {
		t.Fatalf("limit not capped: %d", capped.Limit)
	}
}

func TestPropertyService_List_Filters(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Title: "Beach Bungalow", AgentEmail: "dana@agency.com",
		Location: domain.Location{City: "Brighton"},
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Title: "City Loft", AgentEmail: "erik@agency.com",
		Location: domain.Location{City: "Leeds"},
	}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	result, err := svc.List(context.Background(), ports.ListPropertiesInput{AgentEmail: "erik@agency.com"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Properties) != 1 || result.Properties[0].Title != "City Loft" {
		t.Fatalf("agent filter failed: %+v", result.Properties)
	}

	result, err = svc.List(context.Background(), ports.ListPropertiesInput{Search: "beach"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Properties) != 1 || result.Properties[0].Title != "Beach Bungalow" {
		t.Fatalf("search filter failed: %+v", result.Properties)
	}
}
