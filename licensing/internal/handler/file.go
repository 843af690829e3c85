package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

// UploadFile godoc
// @Summary  Upload a file attached to a record
// @Tags     files
// @Accept   multipart/form-data
// @Produce  json
// @Param    file            formData file   true "contents"
// @Param    reference_table formData string true "owner table, e.g. books"
// @Param    reference_id    formData int    true "owner id"
// @Success  201 {object} model.File
// @Failure  400 {object} echo.HTTPError
// @Security BearerAuth
// @Router   /files [post]
func (h *Handler) UploadFile(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	refID, err := strconv.Atoi(c.FormValue("reference_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reference_id")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer src.Close()

	file, err := h.catalogSvc.Upload(c.Request().Context(), model.Upload{
		ReferenceTable: c.FormValue("reference_table"),
		ReferenceID:    refID,
		Filename:       fh.Filename,
		ContentType:    fh.Header.Get(echo.HeaderContentType),
		Size:           fh.Size,
	}, src)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, file)
}

func (h *Handler) ListFiles(c echo.Context) error {
	refID, err := idParam(c, "reference_id")
	if err != nil {
		return err
	}
	files, err := h.catalogSvc.ListFiles(c.Request().Context(), c.Param("reference_table"), refID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, files)
}
