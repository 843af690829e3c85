package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

func (h *Handler) CreateSchool(c echo.Context) error {
	var req model.CreateSchoolRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	school, err := h.directorySvc.CreateSchool(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, school)
}

func (h *Handler) ListSchools(c echo.Context) error {
	schools, err := h.directorySvc.ListSchools(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, schools)
}

func (h *Handler) GetSchool(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	school, err := h.directorySvc.GetSchool(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, school)
}

func (h *Handler) UpdateSchool(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.SchoolRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	school, err := h.directorySvc.UpdateSchool(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, school)
}

func (h *Handler) UpdateFullSchool(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.FullSchoolUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	school, err := h.directorySvc.UpdateFullSchool(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, school)
}

func (h *Handler) DeleteSchool(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.directorySvc.DeleteSchool(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
