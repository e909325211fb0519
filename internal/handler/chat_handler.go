package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/chat"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/response"
)

// ChatRequest is the request body for the travel-guide chat endpoint.
type ChatRequest struct {
	Messages []chat.Message `json:"messages"`
}

// ChatResponse is the chat endpoint's reply envelope.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Status string `json:"status"`
}

// ChatHandler forwards conversations to the chat-completion provider.
type ChatHandler struct {
	client *chat.Client
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(client *chat.Client) *ChatHandler {
	return &ChatHandler{client: client}
}

// RegisterRoutes registers the chat endpoint on the given group.
func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/chat", h.Chat)
}

// Chat handles POST /api/chat. Provider failures are reported in-band with
// status "error" so the client can render the reply either way.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		response.UnprocessableEntity(c, "messages are required")
		return
	}

	reply, err := h.client.Complete(c.Request.Context(), req.Messages)
	if err != nil {
		c.JSON(http.StatusOK, ChatResponse{Reply: err.Error(), Status: "error"})
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply, Status: "success"})
}
