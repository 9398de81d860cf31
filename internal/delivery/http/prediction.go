package http

import (
	"net/http"

	"stockwisely/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPredictions() {
	h.echo.POST("/predict", h.predict)
	h.echo.GET("/api/user/predictions/:email", h.getPredictions)
}

func (h *HttpAPIHandler) predict(c echo.Context) error {
	req := new(dto.PredictRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Ticker and prediction date are required."))
	}

	result, err := h.service.PredictionService.Predict(c.Request().Context(), *req)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *HttpAPIHandler) getPredictions(c echo.Context) error {
	email := c.Param("email")

	records, err := h.service.PredictionService.List(c.Request().Context(), email)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Predictions fetched", echo.Map{"predictions": records}))
}
