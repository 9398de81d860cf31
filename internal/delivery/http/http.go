package http

import (
	"context"
	"errors"
	"net/http"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/internal/service"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(middleware.NewRateLimiterMiddleware())
	h.echo.Static("/graphs", h.cfg.API.GraphDir)

	h.SetupAuth()
	h.SetupChatbot()
	h.SetupNews()
	h.SetupSentiment()
	h.SetupStocks()
	h.SetupPredictions()
	h.SetupWatchlist()
	h.SetupUser()
}

// errorResponse maps the service error taxonomy onto HTTP statuses. Unmapped
// errors stay generic so internals never leak to clients.
func errorResponse(err error) *dto.BaseResponse {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return dto.NewBaseResponse(http.StatusNotFound, "User not found", nil)
	case errors.Is(err, apperrors.ErrConflict):
		return dto.NewBaseResponse(http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return dto.NewBaseResponse(http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, apperrors.ErrValidation):
		return dto.NewBaseResponse(http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperrors.ErrUpstream):
		return dto.NewBaseResponse(http.StatusBadGateway, "Upstream provider failure", nil)
	default:
		return dto.NewBaseResponse(http.StatusInternalServerError, "Server error", nil)
	}
}

func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.New("invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}
	return nil
}
