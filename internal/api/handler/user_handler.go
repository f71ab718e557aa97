package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamhome/realestate-api/internal/core/domain"
	"github.com/dreamhome/realestate-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type registerUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin agent"`
}

type roleResponse struct {
	Admin    bool         `json:"admin"`
	Agent    bool         `json:"agent"`
	UserData *domain.User `json:"userData"`
}

// Register handles POST /users. Registration is idempotent on email: a
// duplicate insert is a no-op answered with a nil insertedId.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      200   {object}  registerUserResponse  "email already registered"
// @Success      201   {object}  registerUserResponse
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.InsertedID == nil {
		status = http.StatusOK
	}
	return c.JSON(status, registerUserResponse{
		Message:    result.Message,
		InsertedID: result.InsertedID,
	})
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Role handles GET /users/role/:email, the self-lookup of privilege flags.
// The identity-match guard guarantees the path email is the caller's own.
//
// @Summary      Look up own role flags
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  roleResponse
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /users/role/{email} [get]
func (h *UserHandler) Role(c echo.Context) error {
	result, err := h.service.RoleOf(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{
		Admin:    result.Admin,
		Agent:    result.Agent,
		UserData: result.User,
	})
}

// UpdateRole handles PATCH /users/role/:id (admin only).
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /users/role/{id} [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	actor, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateRole(c.Request().Context(), actor, c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "role updated"})
}

// Delete handles DELETE /users/:id (admin only).
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := claimEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
