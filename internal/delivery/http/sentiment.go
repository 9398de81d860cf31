package http

import (
	"net/http"

	"stockwisely/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSentiment() {
	h.echo.POST("/api/sentiment", h.analyzeSentiment)
}

func (h *HttpAPIHandler) analyzeSentiment(c echo.Context) error {
	req := new(dto.SentimentRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Text is required"))
	}

	result, err := h.service.SentimentService.Analyze(c.Request().Context(), req.Text)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, result)
}
