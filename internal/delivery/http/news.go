package http

import (
	"net/http"
	"strings"

	"stockwisely/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupNews() {
	h.echo.GET("/api/live-news", h.getLiveNews)
	h.echo.GET("/api/ticker-news/:ticker", h.getTickerNews)
	h.echo.GET("/api/news", h.getRotatingNews)
}

func (h *HttpAPIHandler) getLiveNews(c echo.Context) error {
	articles, err := h.service.NewsService.Live(c.Request().Context())
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.TickerNewsResponse{News: articles})
}

func (h *HttpAPIHandler) getTickerNews(c echo.Context) error {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Ticker is required"))
	}

	articles, err := h.service.NewsService.ForTicker(c.Request().Context(), ticker)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.TickerNewsResponse{News: articles, Ticker: ticker})
}

func (h *HttpAPIHandler) getRotatingNews(c echo.Context) error {
	ticker := strings.ToUpper(strings.TrimSpace(c.QueryParam("ticker")))
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Ticker query parameter is required"))
	}

	article, err := h.service.NewsService.Rotating(c.Request().Context(), ticker)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, "No news available for this stock ticker.", nil))
	}

	return c.JSON(http.StatusOK, article)
}
