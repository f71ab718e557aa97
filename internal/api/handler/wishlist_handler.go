package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	service ports.WishlistService
}

func NewWishlistHandler(service ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

type createWishlistRequest struct {
	PropertyID    string            `json:"property_id" validate:"required"`
	PropertyTitle string            `json:"property_title"`
	ImageURL      string            `json:"image_url"`
	Location      locationRequest   `json:"location"`
	PriceRange    priceRangeRequest `json:"price_range"`
	AgentName     string            `json:"agent_name"`
}

// Create handles POST /wishLists. The item is attributed to the
// authenticated caller.
func (h *WishlistHandler) Create(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req createWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateWishlistInput{
		PropertyID:    req.PropertyID,
		PropertyTitle: req.PropertyTitle,
		ImageURL:      req.ImageURL,
		Location: domain.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			Area:    req.Location.Area,
		},
		PriceRange: domain.PriceRange{
			Min:      req.PriceRange.Min,
			Max:      req.PriceRange.Max,
			Currency: req.PriceRange.Currency,
		},
		AgentName: req.AgentName,
		UserEmail: email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// List handles GET /wishLists, optionally filtered by ?email=.
func (h *WishlistHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /wishLists/:id.
func (h *WishlistHandler) Delete(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "wishlist item deleted"})
}
