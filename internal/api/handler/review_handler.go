package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for property reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	PropertyID    string `json:"property_id" validate:"required"`
	PropertyTitle string `json:"property_title"`
	ReviewerName  string `json:"reviewer_name" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

// Create handles POST /reviews. The review is attributed to the
// authenticated caller.
func (h *ReviewHandler) Create(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		PropertyID:    req.PropertyID,
		PropertyTitle: req.PropertyTitle,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: email,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// List handles GET /reviews, optionally filtered by ?property=<id>.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context(), c.QueryParam("property"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Delete handles DELETE /reviews/:id. Only the author may delete.
func (h *ReviewHandler) Delete(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), email, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "review deleted"})
}
