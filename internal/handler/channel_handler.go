package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"ytlens/internal/container"
	"ytlens/pkg/errors"
)

// ChannelHandler handles channel analysis requests
type ChannelHandler struct {
	container *container.Container
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(container *container.Container) *ChannelHandler {
	return &ChannelHandler{container: container}
}

type analyzeChannelRequest struct {
	ChannelURL string `json:"channelUrl"`
}

// Analyze handles POST /api/channels/analyze
func (h *ChannelHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := h.container.GetLogger()

	var req analyzeChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, log, errors.NewValidationError("Invalid request body", nil))
		return
	}
	if strings.TrimSpace(req.ChannelURL) == "" {
		writeError(w, log, errors.NewValidationError("Channel URL is required", map[string]interface{}{
			"field": "channelUrl",
		}))
		return
	}

	data, err := h.container.GetYouTubeService().GetChannelData(r.Context(), req.ChannelURL)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeData(w, log, data)

	log.WithFields(map[string]interface{}{
		"channel_url": req.ChannelURL,
		"channel":     data.Name,
	}).Info("Channel analysis completed")
}
