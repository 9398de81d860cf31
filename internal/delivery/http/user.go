package http

import (
	"net/http"

	"stockwisely/internal/dto"
	"stockwisely/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupUser() {
	auth := middleware.NewJWTAuthMiddleware(h.cfg.Auth.JWTSecret)

	h.echo.GET("/api/user/profile/:email", h.getProfile)
	h.echo.PUT("/api/user/profile", h.updateProfile, auth)
	h.echo.POST("/api/user/update-password", h.updatePassword, auth)
	h.echo.GET("/api/user/activity/:email", h.getActivity)
}

func (h *HttpAPIHandler) getProfile(c echo.Context) error {
	email := c.Param("email")

	profile, err := h.service.UserService.GetProfile(c.Request().Context(), email)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *HttpAPIHandler) updateProfile(c echo.Context) error {
	req := new(dto.UpdateProfileRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Email is required"))
	}

	if err := h.service.UserService.UpdateProfile(c.Request().Context(), *req); err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Profile updated successfully", nil))
}

func (h *HttpAPIHandler) updatePassword(c echo.Context) error {
	req := new(dto.UpdatePasswordRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Email and password are required"))
	}

	if err := h.service.UserService.UpdatePassword(c.Request().Context(), *req); err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Password updated successfully", nil))
}

func (h *HttpAPIHandler) getActivity(c echo.Context) error {
	email := c.Param("email")

	summary, err := h.service.UserService.Activity(c.Request().Context(), email)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, summary)
}
