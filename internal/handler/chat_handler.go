package handler

import (
	"encoding/json"
	"net/http"

	"ytlens/internal/container"
	"ytlens/internal/domain"
	"ytlens/pkg/errors"
)

// ChatHandler handles script-assistant chat requests
type ChatHandler struct {
	container *container.Container
}

// NewChatHandler creates a new chat handler
func NewChatHandler(container *container.Container) *ChatHandler {
	return &ChatHandler{container: container}
}

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log := h.container.GetLogger()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, log, errors.NewValidationError("Invalid request body", nil))
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, log, errors.NewValidationError("At least one message is required", map[string]interface{}{
			"field": "messages",
		}))
		return
	}

	reply, err := h.container.GetAIService().Chat(r.Context(), req.Messages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeData(w, log, reply)

	log.WithFields(map[string]interface{}{
		"turns":       len(req.Messages),
		"used_notice": reply.Notice != "",
	}).Info("Chat turn completed")
}
