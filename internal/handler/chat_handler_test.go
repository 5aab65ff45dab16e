package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytlens/internal/domain"
)

func TestChatHandler_Chat_Success(t *testing.T) {
	assistant := &fakeAssistant{
		reply: &domain.ChatReply{Message: "Here is your hook."},
	}
	h := NewChatHandler(testContainer(t, &fakeAnalytics{}, assistant))

	rec, env := doJSON(t, h.Chat, `{"messages":[{"role":"user","content":"Write me a hook"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var reply domain.ChatReply
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, "Here is your hook.", reply.Message)
	assert.Empty(t, reply.Notice)

	require.Len(t, assistant.history, 1)
	assert.Equal(t, "user", assistant.history[0].Role)
}

func TestChatHandler_Chat_FallbackNoticeSurfaces(t *testing.T) {
	assistant := &fakeAssistant{
		reply: &domain.ChatReply{
			Message: "Fallback reply.",
			Notice:  "Using fallback model due to high demand.",
		},
	}
	h := NewChatHandler(testContainer(t, &fakeAnalytics{}, assistant))

	rec, env := doJSON(t, h.Chat, `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var reply domain.ChatReply
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, "Fallback reply.", reply.Message)
	assert.Equal(t, "Using fallback model due to high demand.", reply.Notice)
}

func TestChatHandler_Chat_EmptyHistoryRejected(t *testing.T) {
	assistant := &fakeAssistant{}
	h := NewChatHandler(testContainer(t, &fakeAnalytics{}, assistant))

	rec, env := doJSON(t, h.Chat, `{"messages":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", env.Error.Type)
	assert.Equal(t, "messages", env.Error.Details["field"])
	assert.Nil(t, assistant.history)
}

func TestChatHandler_Chat_MalformedBody(t *testing.T) {
	h := NewChatHandler(testContainer(t, &fakeAnalytics{}, &fakeAssistant{}))

	rec, env := doJSON(t, h.Chat, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", env.Error.Type)
}

func TestHealthHandler_Check(t *testing.T) {
	h := NewHealthHandler(testContainer(t, &fakeAnalytics{}, &fakeAssistant{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ytlens", resp.Service)
}
