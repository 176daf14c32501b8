package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/service"
)

// CatalogHandler serves published materials.
type CatalogHandler struct {
	svc            service.CatalogService
	maxUploadBytes int64
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(svc service.CatalogService, maxUploadBytes int64) *CatalogHandler {
	return &CatalogHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// List godoc
// @Summary All published materials, newest first
// @Tags materials
// @Produce json
// @Success 200 {array} model.Material
// @Router /materials [get]
func (h *CatalogHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Search godoc
// @Summary Materials with a tag starting with the term
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param q query string true "Tag prefix"
// @Success 200 {array} model.Material
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /materials/search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a published material
// @Tags materials
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} model.Material
// @Failure 404 {object} errors.ErrorResponse
// @Router /materials/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Download godoc
// @Summary Redirect to a short-lived download URL
// @Tags materials
// @Param id path string true "Material ID"
// @Success 302
// @Failure 404 {object} errors.ErrorResponse
// @Router /materials/{id}/download [get]
func (h *CatalogHandler) Download(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	url, err := h.svc.DownloadURL(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.Redirect(http.StatusFound, url)
}

// Add godoc
// @Summary Publish a material directly
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param tags formData string true "Comma-separated tags"
// @Param contributor_id formData string false "Credited contributor, defaults to the caller"
// @Param contributor_name formData string false "Credited contributor name"
// @Param file formData file true "Material file"
// @Success 201 {object} model.Material
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /admin/materials [post]
func (h *CatalogHandler) Add(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	upload, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		return err
	}

	contributorID, contributorName := c.FormValue("contributor_id"), c.FormValue("contributor_name")
	if contributorID == "" {
		contributorID, contributorName = p.UID, displayName(c, p)
	}

	material, err := h.svc.AddDirect(c.Request().Context(), service.AddMaterialInput{
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		Tags:            c.FormValue("tags"),
		ContributorID:   contributorID,
		ContributorName: contributorName,
		FileName:        upload.Name,
		ContentType:     upload.ContentType,
		File:            upload.Data,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, material)
}

// Delete godoc
// @Summary Delete a published material and its file
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} service.DeletionResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/materials/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	result, err := h.svc.Delete(c.Request().Context(), id, confirmed(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, result)
}
