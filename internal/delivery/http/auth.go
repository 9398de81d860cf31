package http

import (
	"net/http"

	"stockwisely/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAuth() {
	h.echo.POST("/signup", h.signup)
	h.echo.POST("/login", h.login)
}

func (h *HttpAPIHandler) signup(c echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("All fields are required"))
	}

	if err := h.service.AuthService.Register(c.Request().Context(), *req); err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "User created successfully!", nil))
}

func (h *HttpAPIHandler) login(c echo.Context) error {
	req := new(dto.LoginRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Email and password are required"))
	}

	result, err := h.service.AuthService.Login(c.Request().Context(), *req)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", result))
}
