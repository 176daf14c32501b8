package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/model"
	"nerd/internal/service"
)

// AdminHandler manages the admin roster.
type AdminHandler struct {
	svc service.AdminService
}

// NewAdminHandler creates a new roster handler.
func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// AddAdminRequest names the account to promote.
type AddAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RosterResponse reports roster membership for a key.
type RosterResponse struct {
	Key   string `json:"key"`
	Found bool   `json:"found"`
}

// Add godoc
// @Summary Add an email to the admin roster
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddAdminRequest true "Email"
// @Success 200 {object} RosterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/roster [post]
func (h *AdminHandler) Add(c echo.Context) error {
	var req AddAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	key, err := h.svc.AddAdmin(c.Request().Context(), req.Email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, RosterResponse{Key: key, Found: true})
}

// List godoc
// @Summary The admin roster
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdminEntry
// @Router /admin/roster [get]
func (h *AdminHandler) List(c echo.Context) error {
	entries, err := h.svc.ListAdmins(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Search godoc
// @Summary Check whether an email is on the roster
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} RosterResponse
// @Router /admin/roster/{email} [get]
func (h *AdminHandler) Search(c echo.Context) error {
	email := c.Param("email")
	found, err := h.svc.SearchAdmin(c.Request().Context(), email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, RosterResponse{Key: model.NormalizeEmailKey(email), Found: found})
}

// Remove godoc
// @Summary Remove an email from the roster
// @Tags roster
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/roster/{email} [delete]
func (h *AdminHandler) Remove(c echo.Context) error {
	if err := h.svc.RemoveAdmin(c.Request().Context(), c.Param("email")); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
