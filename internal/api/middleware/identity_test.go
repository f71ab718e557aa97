package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runSelfGuarded(t *testing.T, pathEmail, claimEmail string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues(pathEmail)
	if claimEmail != "" {
		c.Set("email", claimEmail)
	}

	called := false
	mw := RequireSelf("email")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireSelf_Match(t *testing.T) {
	rec, called := runSelfGuarded(t, "x@x.com", "x@x.com")
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSelf_Mismatch(t *testing.T) {
	// A valid token for someone else must still be rejected.
	rec, called := runSelfGuarded(t, "x@x.com", "y@x.com")
	if called {
		t.Fatalf("handler must not run on identity mismatch")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireSelf_MissingClaim(t *testing.T) {
	rec, called := runSelfGuarded(t, "x@x.com", "")
	if called {
		t.Fatalf("handler must not run without a verified identity")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
