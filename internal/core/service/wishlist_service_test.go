package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

type stubWishlistRepo struct {
	byID   map[string]*domain.WishlistItem
	nextID int
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{byID: make(map[string]*domain.WishlistItem)}
}

func (r *stubWishlistRepo) Create(_ context.Context, w *domain.WishlistItem) (string, error) {
	r.nextID++
	id := "wish-" + strconv.Itoa(r.nextID)
	clone := *w
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubWishlistRepo) List(_ context.Context, userEmail string) ([]*domain.WishlistItem, error) {
	var items []*domain.WishlistItem
	for _, w := range r.byID {
		if userEmail != "" && w.UserEmail != userEmail {
			continue
		}
		clone := *w
		items = append(items, &clone)
	}
	return items, nil
}

func (r *stubWishlistRepo) FindByID(_ context.Context, id string) (*domain.WishlistItem, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWishlistItemNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *stubWishlistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrWishlistItemNotFound
	}
	delete(r.byID, id)
	return nil
}

func saveWishlistItem(t *testing.T, svc ports.WishlistService, userEmail string) *domain.WishlistItem {
	t.Helper()
	w, err := svc.Create(context.Background(), ports.CreateWishlistInput{
		PropertyID:    "prop-1",
		PropertyTitle: "Lakeside Villa",
		UserEmail:     userEmail,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return w
}

func TestWishlistService_Create(t *testing.T) {
	svc := NewWishlistService(newStubWishlistRepo(), zerolog.Nop())

	w := saveWishlistItem(t, svc, "bob@x.com")
	if w.ID == "" {
		t.Fatalf("expected generated id")
	}
	if w.UserEmail != "bob@x.com" {
		t.Fatalf("item not attributed to its user: %+v", w)
	}
}

func TestWishlistService_List_FiltersByUser(t *testing.T) {
	svc := NewWishlistService(newStubWishlistRepo(), zerolog.Nop())
	saveWishlistItem(t, svc, "bob@x.com")
	saveWishlistItem(t, svc, "carol@x.com")

	items, err := svc.List(context.Background(), "carol@x.com")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].UserEmail != "carol@x.com" {
		t.Fatalf("user filter failed: %+v", items)
	}
}

func TestWishlistService_Delete_OwnerOnly(t *testing.T) {
	repo := newStubWishlistRepo()
	svc := NewWishlistService(repo, zerolog.Nop())
	w := saveWishlistItem(t, svc, "owner@x.com")

	if err := svc.Delete(context.Background(), "attacker@x.com", w.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("item deleted by non-owner")
	}

	if err := svc.Delete(context.Background(), "owner@x.com", w.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("item not removed")
	}
}

func TestWishlistService_Delete_NotFound(t *testing.T) {
	svc := NewWishlistService(newStubWishlistRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "bob@x.com", "missing"); !errors.Is(err, domain.ErrWishlistItemNotFound) {
		t.Fatalf("expected ErrWishlistItemNotFound, got %v", err)
	}
}
