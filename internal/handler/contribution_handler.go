package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/service"
)

// ContributionHandler handles contribution intake endpoints.
type ContributionHandler struct {
	svc            service.ContributionService
	maxUploadBytes int64
}

// NewContributionHandler creates a new contribution handler.
func NewContributionHandler(svc service.ContributionService, maxUploadBytes int64) *ContributionHandler {
	return &ContributionHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// Submit godoc
// @Summary Submit a study material for review
// @Tags contributions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param tags formData string false "Comma-separated tags"
// @Param file formData file true "Material file"
// @Success 201 {object} model.UnverifiedContribution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /contributions [post]
func (h *ContributionHandler) Submit(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	upload, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		return err
	}

	contribution, err := h.svc.Submit(c.Request().Context(), service.SubmitInput{
		Title:            c.FormValue("title"),
		Description:      c.FormValue("description"),
		Tags:             c.FormValue("tags"),
		ContributorID:    p.UID,
		ContributorName:  displayName(c, p),
		ContributorEmail: p.Email,
		FileName:         upload.Name,
		ContentType:      upload.ContentType,
		File:             upload.Data,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, contribution)
}

// ListMine godoc
// @Summary Everything the caller contributed, in any stage
// @Tags contributions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ContributionSummary
// @Router /contributions/mine [get]
func (h *ContributionHandler) ListMine(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListMine(c.Request().Context(), p.UID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}
