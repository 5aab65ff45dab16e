package youtube

import (
	"context"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"ytlens/pkg/errors"
	"ytlens/pkg/logger"
)

// channelParts are the resource parts every channel lookup requests
var channelParts = []string{"snippet", "statistics", "topicDetails", "brandingSettings"}

// DataAPI is the narrow surface of the platform data API the pipeline needs.
// Lookups return nil (or an empty slice) when the platform reports zero
// items; absence is not an error.
type DataAPI interface {
	ChannelByID(ctx context.Context, id string) (*ytapi.Channel, error)
	ChannelByUsername(ctx context.Context, username string) (*ytapi.Channel, error)
	SearchChannelID(ctx context.Context, query string) (string, error)
	SearchTopVideos(ctx context.Context, channelID string, maxResults int64) ([]*ytapi.SearchResult, error)
	VideosByID(ctx context.Context, ids []string) ([]*ytapi.Video, error)
	VideoByID(ctx context.Context, id string) (*ytapi.Video, error)
}

// Client is the real DataAPI backed by the YouTube Data API v3
type Client struct {
	svc *ytapi.Service
	log *logger.Logger
}

// NewClient creates a YouTube Data API client using API-key access
func NewClient(ctx context.Context, apiKey string, log *logger.Logger) (*Client, error) {
	svc, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.NewInternalError("Failed to initialize YouTube service", err)
	}
	return &Client{svc: svc, log: log}, nil
}

// ChannelByID looks a channel up by its opaque UC... ID
func (c *Client) ChannelByID(ctx context.Context, id string) (*ytapi.Channel, error) {
	resp, err := c.svc.Channels.List(channelParts).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, errors.NewExternalError("Failed to look up channel by ID", err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	return resp.Items[0], nil
}

// ChannelByUsername looks a channel up by its legacy username
func (c *Client) ChannelByUsername(ctx context.Context, username string) (*ytapi.Channel, error) {
	resp, err := c.svc.Channels.List(channelParts).ForUsername(username).Context(ctx).Do()
	if err != nil {
		return nil, errors.NewExternalError("Failed to look up channel by username", err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	return resp.Items[0], nil
}

// SearchChannelID searches channels by free text and returns the first
// result's channel ID, or "" when nothing matched
func (c *Client) SearchChannelID(ctx context.Context, query string) (string, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.NewExternalError("Failed to search for channel", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Id == nil {
		return "", nil
	}
	return resp.Items[0].Id.ChannelId, nil
}

// SearchTopVideos returns a channel's videos ordered by view count
func (c *Client) SearchTopVideos(ctx context.Context, channelID string, maxResults int64) ([]*ytapi.SearchResult, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("viewCount").
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.NewExternalError("Failed to search channel videos", err)
	}
	return resp.Items, nil
}

// VideosByID batch-fetches statistics and duration for the given video IDs
func (c *Client) VideosByID(ctx context.Context, ids []string) ([]*ytapi.Video, error) {
	resp, err := c.svc.Videos.List([]string{"statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.NewExternalError("Failed to fetch video statistics", err)
	}
	return resp.Items, nil
}

// VideoByID fetches one video's snippet and statistics, nil when absent
func (c *Client) VideoByID(ctx context.Context, id string) (*ytapi.Video, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.NewExternalError("Failed to fetch video data", err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	return resp.Items[0], nil
}
