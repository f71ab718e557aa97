package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/api/metrics"
)

// RequireSelf enforces that the path parameter named param equals the
// authenticated caller's email. It composes independently of RequireRole:
// a route may mount either, both, or neither. Must be mounted after Auth.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if c.Param(param) != email {
				metrics.IdentityMismatchesTotal.Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
