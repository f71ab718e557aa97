package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

type stubRoleLookup struct {
	users   map[string]*domain.User
	lookups int
}

func (s *stubRoleLookup) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.lookups++
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func runGuarded(t *testing.T, lookup RoleLookup, role, email string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}

	called := false
	mw := RequireRole(lookup, role)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireRole_Allows(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*domain.User{
		"alice@x.com": {Email: "alice@x.com", Role: domain.RoleAdmin},
	}}

	rec, called := runGuarded(t, lookup, domain.RoleAdmin, "alice@x.com")
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*domain.User{
		"bob@x.com": {Email: "bob@x.com", Role: domain.RoleAgent},
	}}

	rec, called := runGuarded(t, lookup, domain.RoleAdmin, "bob@x.com")
	if called {
		t.Fatalf("handler must not run for mismatched role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// The same identity passes the matching guard.
	rec, called = runGuarded(t, lookup, domain.RoleAgent, "bob@x.com")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("agent guard should pass: called=%v code=%d", called, rec.Code)
	}
}

func TestRequireRole_UnknownUser(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*domain.User{}}

	rec, called := runGuarded(t, lookup, domain.RoleAdmin, "ghost@x.com")
	if called {
		t.Fatalf("handler must not run for unknown user")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_MissingClaim(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*domain.User{}}

	rec, called := runGuarded(t, lookup, domain.RoleAdmin, "")
	if called {
		t.Fatalf("handler must not run without a verified identity")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if lookup.lookups != 0 {
		t.Fatalf("no store read should happen without a claim")
	}
}

func TestRequireRole_LooksUpEveryRequest(t *testing.T) {
	lookup := &stubRoleLookup{users: map[string]*domain.User{
		"alice@x.com": {Email: "alice@x.com", Role: domain.RoleAdmin},
	}}

	runGuarded(t, lookup, domain.RoleAdmin, "alice@x.com")
	runGuarded(t, lookup, domain.RoleAdmin, "alice@x.com")
	if lookup.lookups != 2 {
		t.Fatalf("expected 2 store reads, got %d", lookup.lookups)
	}

	// A role change takes effect on the very next request.
	lookup.users["alice@x.com"].Role = domain.RoleAgent
	rec, called := runGuarded(t, lookup, domain.RoleAdmin, "alice@x.com")
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("stale role honoured: called=%v code=%d", called, rec.Code)
	}
}
