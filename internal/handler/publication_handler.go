package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/service"
)

// PublicationHandler serves verified contributions awaiting publication.
type PublicationHandler struct {
	svc service.PublicationService
}

// NewPublicationHandler creates a new publication handler.
func NewPublicationHandler(svc service.PublicationService) *PublicationHandler {
	return &PublicationHandler{svc: svc}
}

// ListVerified godoc
// @Summary Verified contributions, newest first
// @Tags publication
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.VerifiedContribution
// @Router /admin/contributions/verified [get]
func (h *PublicationHandler) ListVerified(c echo.Context) error {
	items, err := h.svc.ListVerified(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetVerified godoc
// @Summary Get a verified contribution
// @Tags publication
// @Produce json
// @Security BearerAuth
// @Param id path string true "Verified contribution ID"
// @Success 200 {object} model.VerifiedContribution
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/contributions/verified/{id} [get]
func (h *PublicationHandler) GetVerified(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.GetVerified(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateVerified godoc
// @Summary Edit a verified contribution
// @Tags publication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Verified contribution ID"
// @Param request body MetadataRequest true "Changes and expected version"
// @Success 200 {object} model.VerifiedContribution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/contributions/verified/{id} [patch]
func (h *PublicationHandler) UpdateVerified(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req MetadataRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.svc.UpdateVerified(c.Request().Context(), id, req.Version, req.input())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Publish godoc
// @Summary Publish a verified contribution to the catalog
// @Tags publication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Verified contribution ID"
// @Param request body MetadataRequest true "Overrides and expected version"
// @Success 201 {object} model.Material
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/contributions/verified/{id}/publish [post]
func (h *PublicationHandler) Publish(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req MetadataRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	material, err := h.svc.Finalize(c.Request().Context(), id, req.Version, req.input(), p.UID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, material)
}

// DeleteVerified godoc
// @Summary Delete a verified contribution and its file
// @Tags publication
// @Produce json
// @Security BearerAuth
// @Param id path string true "Verified contribution ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} service.DeletionResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/contributions/verified/{id} [delete]
func (h *PublicationHandler) DeleteVerified(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	result, err := h.svc.DeleteVerified(c.Request().Context(), id, confirmed(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, result)
}
