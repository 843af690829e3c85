package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

func (h *Handler) CreateAddress(c echo.Context) error {
	var req model.Address
	if err := bindValid(c, &req); err != nil {
		return err
	}
	address, err := h.directorySvc.CreateAddress(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, address)
}

func (h *Handler) ListAddresses(c echo.Context) error {
	addresses, err := h.directorySvc.ListAddresses(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *Handler) GetAddress(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	address, err := h.directorySvc.GetAddress(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, address)
}

func (h *Handler) UpdateAddress(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.Address
	if err := bindValid(c, &req); err != nil {
		return err
	}
	address, err := h.directorySvc.UpdateAddress(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, address)
}

func (h *Handler) DeleteAddress(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.directorySvc.DeleteAddress(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
