package http

import (
	"net/http"
	"time"

	"stockwisely/internal/dto"
	"stockwisely/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupChatbot() {
	h.echo.POST("/api/chatbot", h.chat)
}

func (h *HttpAPIHandler) chat(c echo.Context) error {
	req := new(dto.ChatbotRequest)
	if err := h.bindAndValidate(c, req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Message is required"))
	}

	result, err := h.service.ChatbotService.Chat(c.Request().Context(), *req)
	if err != nil {
		// The widget still needs something to render when the provider is
		// down, so failures carry the canned fallback text.
		return c.JSON(http.StatusOK, dto.ChatbotResponse{
			Response:  service.FallbackMessage,
			Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusOK, result)
}
