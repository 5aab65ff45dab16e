package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"ytlens/internal/container"
	"ytlens/internal/domain"
	"ytlens/pkg/errors"
)

// VideoHandler handles video metadata and analysis requests
type VideoHandler struct {
	container *container.Container
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(container *container.Container) *VideoHandler {
	return &VideoHandler{container: container}
}

type videoRequest struct {
	URL string `json:"url"`
}

func (h *VideoHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	log := h.container.GetLogger()

	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, log, errors.NewValidationError("Invalid request body", nil))
		return "", false
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, log, errors.NewValidationError("Video URL is required", map[string]interface{}{
			"field": "url",
		}))
		return "", false
	}
	return req.URL, true
}

// Metadata handles POST /api/videos/metadata: raw video fields only
func (h *VideoHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	log := h.container.GetLogger()

	url, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	video, err := h.container.GetYouTubeService().GetVideoData(r.Context(), url)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeData(w, log, video)
	log.WithField("video_id", video.VideoID).Info("Video metadata fetched")
}

// Analyze handles POST /api/videos/analyze: raw fields plus the
// model-generated content analysis
func (h *VideoHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := h.container.GetLogger()

	url, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	video, err := h.container.GetYouTubeService().GetVideoData(r.Context(), url)
	if err != nil {
		writeError(w, log, err)
		return
	}

	analysis, err := h.container.GetAIService().AnalyzeVideo(r.Context(), video)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeData(w, log, domain.AnalysisData{Original: video, Analysis: analysis})
	log.WithField("video_id", video.VideoID).Info("Video analysis completed")
}
