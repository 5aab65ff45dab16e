package service

import (
	"context"

	"ytlens/internal/domain"
)

// ChannelAnalytics defines the interface for video-platform lookups
type ChannelAnalytics interface {
	// GetChannelData resolves a channel URL and returns its assembled,
	// display-ready data, memoized under the normalized URL
	GetChannelData(ctx context.Context, channelURL string) (*domain.ChannelData, error)

	// GetVideoData validates a video URL and returns the raw video metadata
	GetVideoData(ctx context.Context, videoURL string) (*domain.VideoData, error)
}

// ScriptAssistant defines the interface for language-model operations
type ScriptAssistant interface {
	// AnalyzeVideo runs the content analysis over fetched video metadata
	AnalyzeVideo(ctx context.Context, video *domain.VideoData) (*domain.AIAnalysis, error)

	// Chat answers one turn of the script-writing conversation
	Chat(ctx context.Context, history []domain.ChatMessage) (*domain.ChatReply, error)
}

// Services aggregates all service interfaces
type Services struct {
	YouTube ChannelAnalytics
	AI      ScriptAssistant
}
