package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/api/metrics"
	"github.com/dreamhome/realestate-api/internal/core/domain"
)

// RoleLookup reads the current user record for an email. The lookup runs on
// every guarded request; role changes take effect on the next request.
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole enforces that the authenticated caller's stored role equals
// the required role exactly. Must be mounted after Auth.
func RequireRole(lookup RoleLookup, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			start := time.Now()
			user, err := lookup.FindByEmail(c.Request().Context(), email)
			metrics.RoleLookupDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.RoleDenialsTotal.WithLabelValues(role).Inc()
					return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
				}
				// Store fault, not an authorization decision.
				return err
			}

			if user.Role != role {
				metrics.RoleDenialsTotal.WithLabelValues(role).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}
