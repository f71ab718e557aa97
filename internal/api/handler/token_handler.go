package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/api/metrics"
	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// IssuanceLimiter caps how often a single client may request tokens.
type IssuanceLimiter interface {
	Allow(ctx context.Context, scope, client string) (bool, error)
}

// TokenHandler handles session token issuance.
type TokenHandler struct {
	tokens  ports.TokenService
	limiter IssuanceLimiter
}

// NewTokenHandler creates a TokenHandler. limiter may be nil, in which case
// issuance is not rate limited.
func NewTokenHandler(tokens ports.TokenService, limiter IssuanceLimiter) *TokenHandler {
	return &TokenHandler{tokens: tokens, limiter: limiter}
}

type issueTokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /auth/token.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity claim"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/token [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.limiter != nil {
		ok, err := h.limiter.Allow(c.Request().Context(), "token", c.RealIP())
		if err != nil {
			return err
		}
		if !ok {
			metrics.TokenRateLimitedTotal.Inc()
			return domain.ErrRateLimited
		}
	}

	token, err := h.tokens.IssueToken(c.Request().Context(), ports.IssueTokenInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
