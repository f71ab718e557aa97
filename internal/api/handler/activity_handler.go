package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// ActivityHandler exposes the audit trail to administrators.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /activities (admin only), optionally filtered by
// ?actor= and capped by ?limit=.
func (h *ActivityHandler) List(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	events, err := h.service.List(c.Request().Context(), c.QueryParam("actor"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
