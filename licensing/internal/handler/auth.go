package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
)

// Login godoc
// @Summary  Exchange email and password for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body model.LoginRequest true "credentials"
// @Success  200 {object} model.LoginResponse
// @Failure  400,401 {object} echo.HTTPError
// @Router   /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.authSvc.Me(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
