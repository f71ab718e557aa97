package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// claimEmail extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a present email proves the middleware
// ran. Calling a guarded handler without it is a wiring error, answered
// with 401 rather than a panic.
func claimEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
