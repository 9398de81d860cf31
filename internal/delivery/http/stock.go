package http

import (
	"net/http"
	"strings"

	"stockwisely/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks() {
	h.echo.GET("/api/stocks/:ticker", h.getStock)
}

func (h *HttpAPIHandler) getStock(c echo.Context) error {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Ticker is required"))
	}

	snapshot, err := h.service.StockService.GetStock(c.Request().Context(), ticker)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, snapshot)
}
