package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type locationRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Area    string `json:"area,omitempty"`
}

type priceRangeRequest struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gtefield=Min"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

type createPropertyRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Location    locationRequest   `json:"location" validate:"required"`
	PriceRange  priceRangeRequest `json:"price_range" validate:"required"`
	AgentName   string            `json:"agent_name" validate:"required"`
}

type updatePropertyRequest struct {
	Title              *string            `json:"title,omitempty"`
	Description        *string            `json:"description,omitempty"`
	ImageURL           *string            `json:"image_url,omitempty"`
	Location           *locationRequest   `json:"location,omitempty"`
	PriceRange         *priceRangeRequest `json:"price_range,omitempty"`
	VerificationStatus *string            `json:"verification_status,omitempty" validate:"omitempty,oneof=pending verified rejected"`
	Advertised         *bool              `json:"advertised,omitempty"`
}

type listPropertiesResponse struct {
	Properties []*domain.Property `json:"properties"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// List handles GET /properties.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        verification_status  query     string  false  "pending | verified | rejected"
// @Param        agent                query     string  false  "Filter by agent email"
// @Param        search               query     string  false  "Match title or city"
// @Param        page                 query     int     false  "Page number (1-based)"
// @Param        limit                query     int     false  "Page size (max 100)"
// @Success      200                  {object}  listPropertiesResponse
// @Failure      401                  {object}  map[string]string
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListPropertiesInput{
		VerificationStatus: c.QueryParam("verification_status"),
		AgentEmail:         c.QueryParam("agent"),
		Search:             c.QueryParam("search"),
		Page:               page,
		Limit:              limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{
		Properties: result.Properties,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
	})
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /properties (agent only). The listing is attributed
// to the authenticated agent, not a caller-supplied email.
//
// @Summary      List a new property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	agentEmail, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
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
		AgentName:  req.AgentName,
		AgentEmail: agentEmail,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, p)
}

// Update handles PATCH /properties/:id (agent only).
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /properties/{id} [patch]
func (h *PropertyHandler) Update(c echo.Context) error {
	actor, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.PropertyUpdate{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Advertised:  req.Advertised,
	}
	if req.Location != nil {
		update.Location = &domain.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			Area:    req.Location.Area,
		}
	}
	if req.PriceRange != nil {
		update.PriceRange = &domain.PriceRange{
			Min:      req.PriceRange.Min,
			Max:      req.PriceRange.Max,
			Currency: req.PriceRange.Currency,
		}
	}
	if req.VerificationStatus != nil {
		status := domain.VerificationStatus(*req.VerificationStatus)
		update.VerificationStatus = &status
	}

	p, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /properties/:id (agent only).
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Property id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	actor, err := claimEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "property deleted"})
}
