package ai

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"ytlens/internal/domain"
	"ytlens/pkg/errors"
)

// CompletionRequest carries one chat-completion call: an optional system
// prompt, the ordered message history, and sampling parameters.
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []domain.ChatMessage
	Temperature float64
	MaxTokens   int64
	TopP        float64
}

// CompletionClient is the language-model collaborator boundary. Rate-limit
// signals surface as AppError with type rate_limit so the caller can chain
// to a fallback model.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type openAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates a completion client against an OpenAI-compatible
// endpoint. baseURL may be empty for the default API host.
func NewOpenAIClient(apiKey, baseURL string) CompletionClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIClient{client: openai.NewClient(opts...)}
}

// Complete performs a single chat completion
func (c *openAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, msg := range req.Messages {
		if msg.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(msg.Content))
		} else {
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	}
	if req.TopP > 0 {
		params.TopP = openai.Float(req.TopP)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapCompletionError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.NewExternalError("Model returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// mapCompletionError translates provider errors into the app taxonomy
func mapCompletionError(err error) error {
	var apierr *openai.Error
	if stderrors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests:
			return errors.NewRateLimitError("Model rate limit exceeded")
		case http.StatusUnauthorized:
			return errors.NewExternalError("Authentication failed with AI service", err)
		}
	}
	return errors.NewExternalError("Model request failed", err)
}
