package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"ytlens/internal/container"
	"ytlens/internal/domain"
	"ytlens/internal/service"
	"ytlens/pkg/logger"
)

// fakeAnalytics is a scriptable ChannelAnalytics for handler tests.
type fakeAnalytics struct {
	channel    *domain.ChannelData
	channelErr error
	video      *domain.VideoData
	videoErr   error
	calls      int
}

func (f *fakeAnalytics) GetChannelData(_ context.Context, _ string) (*domain.ChannelData, error) {
	f.calls++
	return f.channel, f.channelErr
}

func (f *fakeAnalytics) GetVideoData(_ context.Context, _ string) (*domain.VideoData, error) {
	f.calls++
	return f.video, f.videoErr
}

// fakeAssistant is a scriptable ScriptAssistant for handler tests.
type fakeAssistant struct {
	analysis    *domain.AIAnalysis
	analysisErr error
	reply       *domain.ChatReply
	replyErr    error
	history     []domain.ChatMessage
}

func (f *fakeAssistant) AnalyzeVideo(_ context.Context, _ *domain.VideoData) (*domain.AIAnalysis, error) {
	return f.analysis, f.analysisErr
}

func (f *fakeAssistant) Chat(_ context.Context, history []domain.ChatMessage) (*domain.ChatReply, error) {
	f.history = history
	return f.reply, f.replyErr
}

func testContainer(t *testing.T, analytics service.ChannelAnalytics, assistant service.ScriptAssistant) *container.Container {
	t.Helper()
	log, err := logger.New("error", "production")
	require.NoError(t, err)
	return &container.Container{
		Logger: log,
		Services: &service.Services{
			YouTube: analytics,
			AI:      assistant,
		},
	}
}

// envelope mirrors the standard success/error response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type    string                 `json:"type"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func doJSON(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}
