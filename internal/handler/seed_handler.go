package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/service"
)

// SeedHandler loads fixture data on demand.
type SeedHandler struct {
	svc service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(svc service.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// Seed godoc
// @Summary Load roster entries and published materials
// @Description Materials are matched by file_url, so re-running updates them in place.
// @Tags seed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SeedData true "Seed document"
// @Success 200 {object} service.SeedResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	var data service.SeedData
	if err := c.Bind(&data); err != nil {
		return invalidRequest("invalid seed document")
	}
	result, err := h.svc.Seed(c.Request().Context(), data)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, result)
}
