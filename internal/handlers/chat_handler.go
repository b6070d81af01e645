package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "aurum/internal/errors"
	"aurum/internal/services"
)

// ChatHandler handles chat-related requests.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the request payload for a chat turn.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"userId"`
}

// Chat handles one chat turn with the assistant.
// @Summary     Chat with the assistant
// @Description Send a message to the gold investment assistant and receive a reply with an investment-intent flag
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "User message"
// @Success     200 {object} services.ChatResult "Assistant reply"
// @Failure     400 {object} ErrorResponse "Missing message"
// @Failure     500 {object} ErrorResponse "Classifier, generator, or storage error"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Message is required"))
		return
	}

	result, err := h.chatService.ProcessMessage(c.Request.Context(), userOrDefault(req.UserID), req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetChatHistory returns a user's chat exchanges, oldest first.
// @Summary     Get chat history
// @Description Get all chat exchanges for a user in creation order
// @Tags        chat
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} models.ChatExchange "Chat exchanges"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /chat-history/{userId} [get]
func (h *ChatHandler) GetChatHistory(c *gin.Context) {
	history, err := h.chatService.GetHistory(c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
