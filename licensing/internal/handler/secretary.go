package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

// CreateSecretary godoc
// @Summary  Create a secretariat with its address
// @Tags     secretaries
// @Accept   json
// @Produce  json
// @Param    request body model.SecretaryRequest true "secretariat"
// @Success  201 {object} model.SecretaryDetail
// @Failure  400 {object} echo.HTTPError
// @Security BearerAuth
// @Router   /secretaries [post]
func (h *Handler) CreateSecretary(c echo.Context) error {
	var req model.SecretaryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	secretary, err := h.directorySvc.CreateSecretary(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, secretary)
}

func (h *Handler) ListSecretaries(c echo.Context) error {
	secretaries, err := h.directorySvc.ListSecretaries(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, secretaries)
}

func (h *Handler) GetSecretary(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	secretary, err := h.directorySvc.GetSecretary(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, secretary)
}

func (h *Handler) UpdateSecretary(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.SecretaryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	secretary, err := h.directorySvc.UpdateSecretary(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, secretary)
}

// UpdateFullSecretary replaces the secretariat, its address, its main responsible and that responsible's login at once.
func (h *Handler) UpdateFullSecretary(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.FullSecretaryUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	secretary, err := h.directorySvc.UpdateFullSecretary(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, secretary)
}

func (h *Handler) DeleteSecretary(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.directorySvc.DeleteSecretary(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListSecretarySchools(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	schools, err := h.directorySvc.ListSecretarySchools(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, schools)
}
