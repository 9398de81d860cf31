package http

import (
	"net/http"

	"stockwisely/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupWatchlist() {
	h.echo.POST("/watchlist/add", h.addToWatchlist)
	h.echo.POST("/watchlist/remove", h.removeFromWatchlist)
	h.echo.GET("/watchlist/:email", h.getWatchlist)
}

func (h *HttpAPIHandler) addToWatchlist(c echo.Context) error {
	req := new(dto.AddWatchlistRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Email and ticker are required"))
	}

	if err := h.service.WatchlistService.Add(c.Request().Context(), *req); err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Stock added to watchlist", echo.Map{"added": true}))
}

func (h *HttpAPIHandler) removeFromWatchlist(c echo.Context) error {
	req := new(dto.RemoveWatchlistRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Email and ticker are required"))
	}

	if err := h.service.WatchlistService.Remove(c.Request().Context(), *req); err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Stock removed from watchlist", echo.Map{"removed": true}))
}

func (h *HttpAPIHandler) getWatchlist(c echo.Context) error {
	email := c.Param("email")

	entries, err := h.service.WatchlistService.List(c.Request().Context(), email)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.Code, resp)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Watchlist fetched", echo.Map{"watchlist": entries}))
}
