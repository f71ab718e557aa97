package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// OfferHandler handles HTTP requests for purchase offers.
type OfferHandler struct {
	service ports.OfferService
}

func NewOfferHandler(service ports.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

type createOfferRequest struct {
	PropertyID    string  `json:"property_id" validate:"required"`
	PropertyTitle string  `json:"property_title"`
	AgentEmail    string  `json:"agent_email" validate:"required,email"`
	BuyerName     string  `json:"buyer_name" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"required,len=3"`
	BuyingDate    string  `json:"buying_date" validate:"required,datetime=2006-01-02"`
}

type updateOfferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected bought"`
}

// Create handles POST /makeOffers. The offer is attributed to the
// authenticated buyer.
//
// @Summary      Place an offer on a property
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOfferRequest  true  "Offer details"
// @Success      201   {object}  domain.Offer
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /makeOffers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Layout matches the datetime validate tag.
	buyingDate, _ := time.Parse("2006-01-02", req.BuyingDate)

	offer, err := h.service.Create(c.Request().Context(), ports.CreateOfferInput{
		PropertyID:    req.PropertyID,
		PropertyTitle: req.PropertyTitle,
		AgentEmail:    req.AgentEmail,
		BuyerName:     req.BuyerName,
		BuyerEmail:    email,
		Amount:        req.Amount,
		Currency:      req.Currency,
		BuyingDate:    buyingDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, offer)
}

// List handles GET /makeOffers, optionally filtered by ?buyer= or ?agent=.
//
// @Summary      List offers
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        buyer  query     string  false  "Filter by buyer email"
// @Param        agent  query     string  false  "Filter by agent email"
// @Success      200    {array}   domain.Offer
// @Failure      401    {object}  map[string]string
// @Router       /makeOffers [get]
func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.service.List(c.Request().Context(), c.QueryParam("buyer"), c.QueryParam("agent"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// UpdateStatus handles PATCH /makeOffers/:id/status (agent only).
//
// @Summary      Accept, reject, or complete an offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Offer id"
// @Param        body  body      updateOfferStatusRequest  true  "New status"
// @Success      200   {object}  domain.Offer
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /makeOffers/{id}/status [patch]
func (h *OfferHandler) UpdateStatus(c echo.Context) error {
	actor, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req updateOfferStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), domain.OfferStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// Delete handles DELETE /makeOffers/:id. Only the buyer may withdraw.
//
// @Summary      Withdraw an offer
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Offer id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /makeOffers/{id} [delete]
func (h *OfferHandler) Delete(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "offer deleted"})
}
