package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

func (h *Handler) CreateResponsible(c echo.Context) error {
	var req model.ResponsibleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.directorySvc.CreateResponsible(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListResponsibles(c echo.Context) error {
	items, err := h.directorySvc.ListResponsibles(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetResponsible(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.directorySvc.GetResponsible(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateResponsible(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.ResponsibleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.directorySvc.UpdateResponsible(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteResponsible(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.directorySvc.DeleteResponsible(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
