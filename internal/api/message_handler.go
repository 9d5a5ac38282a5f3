package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/core"
	"handmade-backend/internal/models"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	messageService core.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(ms core.MessageService) *MessageHandler {
	return &MessageHandler{messageService: ms}
}

// SubmitMessage handles POST /messages
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req models.CreateMessageRequest
	if !bindJSONOrFail(c, &req) {
		return
	}

	msg, err := h.messageService.Submit(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /admin/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// DeleteMessage handles DELETE /admin/messages/:messageId
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	adminID := c.GetString("userID")
	messageID := c.Param("messageId")
	if messageID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message ID is required in path"})
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), adminID, messageID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StreamMessages handles GET /admin/messages/stream for the admin inbox.
func (h *MessageHandler) StreamMessages(c *gin.Context) {
	streamSnapshots(c, h.messageService.WatchMessages(c.Request.Context()))
}
