package handlers

import (
	"net/http"

	"nursery_manager/internal/middleware"
	"nursery_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		SessionID   string `json:"session_id" binding:"required"`
		UserMessage string `json:"user_message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	exchange, err := h.chatService.Send(c.Request.Context(), middleware.CurrentSession(c), req.SessionID, req.UserMessage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exchange)
}

func (h *ChatHandler) History(c *gin.Context) {
	history, err := h.chatService.History(c.Request.Context(), middleware.CurrentSession(c), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
