package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/service"
)

// ModerationHandler serves the pending review queue.
type ModerationHandler struct {
	svc service.ModerationService
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(svc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: svc}
}

// MetadataRequest edits a pipeline record. Omitted fields keep their value;
// tags are a comma-separated string.
type MetadataRequest struct {
	Version     int     `json:"version" validate:"required,min=1"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Tags        *string `json:"tags,omitempty"`
}

func (r MetadataRequest) input() service.MetadataInput {
	return service.MetadataInput{Title: r.Title, Description: r.Description, Tags: r.Tags}
}

// ListPending godoc
// @Summary Pending contributions, newest first
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UnverifiedContribution
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/contributions/pending [get]
func (h *ModerationHandler) ListPending(c echo.Context) error {
	items, err := h.svc.ListPending(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetPending godoc
// @Summary Get a pending contribution
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Success 200 {object} model.UnverifiedContribution
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/contributions/pending/{id} [get]
func (h *ModerationHandler) GetPending(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.GetPending(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdatePending godoc
// @Summary Edit a pending contribution
// @Tags moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Param request body MetadataRequest true "Changes and expected version"
// @Success 200 {object} model.UnverifiedContribution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/contributions/pending/{id} [patch]
func (h *ModerationHandler) UpdatePending(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req MetadataRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.svc.UpdatePending(c.Request().Context(), id, req.Version, req.input())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Verify godoc
// @Summary Verify a pending contribution
// @Tags moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Param request body MetadataRequest true "Overrides and expected version"
// @Success 201 {object} model.VerifiedContribution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/contributions/pending/{id}/verify [post]
func (h *ModerationHandler) Verify(c echo.Context) error {
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
	verified, err := h.svc.Verify(c.Request().Context(), id, req.Version, req.input(), p.UID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, verified)
}

// Reject godoc
// @Summary Reject a pending contribution and delete its file
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contribution ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} service.DeletionResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/contributions/pending/{id} [delete]
func (h *ModerationHandler) Reject(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	result, err := h.svc.Reject(c.Request().Context(), id, confirmed(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, result)
}
