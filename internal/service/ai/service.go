package ai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math/rand"
	"regexp"

	"ytlens/internal/domain"
	"ytlens/pkg/errors"
	"ytlens/pkg/logger"
)

const (
	primaryModel  = "gpt-4o"
	fallbackModel = "gpt-3.5-turbo"
)

// Service delegates content analysis and script chat to the language-model
// collaborator. The chat path degrades through a fallback model and finally
// a canned reply so the user always gets a visible completion.
type Service struct {
	client       CompletionClient
	log          *logger.Logger
	pickFallback func(n int) int
}

// NewService creates an AI service
func NewService(client CompletionClient, log *logger.Logger) *Service {
	return &Service{
		client:       client,
		log:          log,
		pickFallback: rand.Intn,
	}
}

// AnalyzeVideo asks the model for the structured content analysis of one
// video. Unparseable model output is logged with the raw text retained and
// reported as a model_output error, never partially trusted.
func (s *Service) AnalyzeVideo(ctx context.Context, video *domain.VideoData) (*domain.AIAnalysis, error) {
	content, err := s.client.Complete(ctx, CompletionRequest{
		Model:       primaryModel,
		System:      analysisSystemPrompt,
		Messages:    []domain.ChatMessage{{Role: "user", Content: analysisPrompt(video)}},
		Temperature: 1,
		MaxTokens:   4096,
		TopP:        1,
	})
	if err != nil {
		return nil, err
	}

	raw, err := extractJSON(content)
	if err != nil {
		s.log.WithError(err).WithField("raw_response", content).Error("Model returned unparseable analysis")
		return nil, errors.NewModelOutputError("Failed to parse AI response", err)
	}

	var analysis domain.AIAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		s.log.WithError(err).WithField("raw_response", content).Error("Model returned invalid analysis JSON")
		return nil, errors.NewModelOutputError("Failed to parse AI response", err)
	}

	return &analysis, nil
}

// Chat answers one turn of the script conversation. A rate-limited primary
// model falls back to the cheaper model with a user-facing notice; both
// failing yields a canned reply rather than an error.
func (s *Service) Chat(ctx context.Context, history []domain.ChatMessage) (*domain.ChatReply, error) {
	reply, err := s.client.Complete(ctx, CompletionRequest{
		Model:       primaryModel,
		System:      scriptSystemPrompt,
		Messages:    history,
		Temperature: 1,
		MaxTokens:   4096,
		TopP:        1,
	})
	if err == nil {
		if reply != "" {
			return &domain.ChatReply{Message: reply}, nil
		}
		return &domain.ChatReply{Message: emptyReplyMessage}, nil
	}

	if !isRateLimit(err) {
		return nil, err
	}
	s.log.WithError(err).Warn("Primary model rate limited, trying fallback model")

	reply, fallbackErr := s.client.Complete(ctx, CompletionRequest{
		Model:       fallbackModel,
		System:      scriptSystemPrompt,
		Messages:    history,
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if fallbackErr == nil {
		if reply != "" {
			return &domain.ChatReply{Message: reply, Notice: noticeFallbackModel}, nil
		}
		return &domain.ChatReply{Message: emptyReplyMessage}, nil
	}

	s.log.WithError(fallbackErr).Error("Fallback model failed, using canned response")
	return &domain.ChatReply{
		Message: fallbackResponses[s.pickFallback(len(fallbackResponses))],
		Notice:  noticeServiceLimited,
	}, nil
}

// isRateLimit reports whether an error is the provider's rate-limit signal
func isRateLimit(err error) bool {
	var appErr *errors.AppError
	return stderrors.As(err, &appErr) && appErr.Type == errors.ErrorTypeRateLimit
}

var (
	fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSON   = regexp.MustCompile(`(?s)\{.*\}`)
)

// extractJSON pulls a JSON object out of model output, tolerating markdown
// code fences the model sometimes adds despite instructions
func extractJSON(content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("empty model response")
	}
	if m := fencedJSON.FindStringSubmatch(content); m != nil {
		return m[1], nil
	}
	if m := bareJSON.FindString(content); m != "" {
		return m, nil
	}
	return "", fmt.Errorf("no JSON object found in model response")
}
