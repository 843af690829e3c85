package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

// CreateBatch godoc
// @Summary      Create a license batch
// @Description  Generates quantity license keys for a secretariat or a private school.
// @Tags         license-batches
// @Accept       json
// @Produce      json
// @Param        request body model.CreateBatchRequest true "batch"
// @Success      201 {object} model.CreatedBatch
// @Failure      400,404,409 {object} echo.HTTPError
// @Security     BearerAuth
// @Router       /license-batches [post]
func (h *Handler) CreateBatch(c echo.Context) error {
	var req model.CreateBatchRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	batch, err := h.licenseSvc.CreateBatch(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, batch)
}

// ListBatches godoc
// @Summary  List license batches, newest first
// @Tags     license-batches
// @Produce  json
// @Success  200 {array} model.BatchSummary
// @Security BearerAuth
// @Router   /license-batches [get]
func (h *Handler) ListBatches(c echo.Context) error {
	batches, err := h.licenseSvc.ListBatches(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, batches)
}

// GetBatch godoc
// @Summary  Get a license batch with its keys
// @Tags     license-batches
// @Produce  json
// @Param    id path int true "batch id"
// @Success  200 {object} model.BatchDetail
// @Failure  404 {object} echo.HTTPError
// @Security BearerAuth
// @Router   /license-batches/{id} [get]
func (h *Handler) GetBatch(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	batch, err := h.licenseSvc.GetBatch(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, batch)
}

// UpdateBatchStatus godoc
// @Summary  Send a license batch
// @Tags     license-batches
// @Accept   json
// @Produce  json
// @Param    id path int true "batch id"
// @Param    request body model.UpdateBatchStatusRequest true "only ENVIADO is accepted"
// @Success  200 {object} model.LicenseBatch
// @Failure  400,404,422 {object} echo.HTTPError
// @Security BearerAuth
// @Router   /license-batches/{id}/status [patch]
func (h *Handler) UpdateBatchStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateBatchStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	batch, err := h.licenseSvc.UpdateBatchStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, batch)
}

// ListSecretaryBatches godoc
// @Summary  License batches already sent to a secretariat
// @Tags     secretaries
// @Produce  json
// @Param    id path int true "secretary id"
// @Success  200 {array} model.BatchSummary
// @Security BearerAuth
// @Router   /secretaries/{id}/license-batches [get]
func (h *Handler) ListSecretaryBatches(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	batches, err := h.licenseSvc.ListSecretaryBatches(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, batches)
}
