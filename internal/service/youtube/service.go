package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	ytapi "google.golang.org/api/youtube/v3"

	"ytlens/internal/cache"
	"ytlens/internal/domain"
	"ytlens/pkg/errors"
	"ytlens/pkg/logger"
)

const maxTopVideos = 5

// Service resolves channel and video URLs into display-ready payloads,
// memoizing results in the injected cache store.
type Service struct {
	api        DataAPI
	resolver   *Resolver
	aggregator *Aggregator
	store      cache.Store
	ttl        time.Duration
	log        *logger.Logger
}

// NewService creates a YouTube data service
func NewService(api DataAPI, store cache.Store, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{
		api:        api,
		resolver:   NewResolver(api, log),
		aggregator: NewAggregator(api, log),
		store:      store,
		ttl:        ttl,
		log:        log,
	}
}

// GetChannelData runs the channel pipeline: extract identifier, resolve,
// aggregate top videos, assemble. Results are cached under the normalized
// URL; a live cache entry short-circuits the whole pipeline.
func (s *Service) GetChannelData(ctx context.Context, channelURL string) (*domain.ChannelData, error) {
	if strings.TrimSpace(channelURL) == "" {
		return nil, errors.NewValidationError("Channel URL is required", map[string]interface{}{
			"field": "channelUrl",
		})
	}

	key := "channel:" + cache.Key(channelURL)
	if data := s.cachedChannel(ctx, key); data != nil {
		s.log.WithField("channel_url", channelURL).Debug("Returning cached channel data")
		return data, nil
	}

	identifier := ExtractChannelIdentifier(channelURL)
	s.log.WithFields(map[string]interface{}{
		"channel_url": channelURL,
		"identifier":  identifier.Value,
		"kind":        string(identifier.Kind),
	}).Info("Fetching fresh channel data")

	channel, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	videos := s.aggregator.TopVideos(ctx, channel.Id, maxTopVideos)
	data := assembleChannelData(channel, videos, identifier)

	s.storeJSON(ctx, key, data)
	return data, nil
}

// GetVideoData validates a video URL and fetches its raw metadata. The raw
// payload is cached like channel data, keyed by the normalized URL.
func (s *Service) GetVideoData(ctx context.Context, videoURL string) (*domain.VideoData, error) {
	videoID, ok := ExtractVideoID(videoURL)
	if !ok {
		return nil, errors.NewValidationError("Invalid YouTube URL", map[string]interface{}{
			"field": "url",
		})
	}

	key := "video:" + cache.Key(videoURL)
	if cached, hit, err := s.store.Get(ctx, key); err != nil {
		s.log.WithError(err).Warn("Cache lookup failed, fetching from API")
	} else if hit {
		var data domain.VideoData
		if err := json.Unmarshal([]byte(cached), &data); err == nil {
			s.log.WithField("video_id", videoID).Debug("Returning cached video data")
			return &data, nil
		}
		s.log.WithField("video_id", videoID).Warn("Corrupted cache entry, fetching from API")
	}

	video, err := s.api.VideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Video not found: %s", videoID))
	}

	data := rawVideoData(video)
	s.storeJSON(ctx, key, data)
	return data, nil
}

// cachedChannel returns a live cached ChannelData for the key, or nil
func (s *Service) cachedChannel(ctx context.Context, key string) *domain.ChannelData {
	cached, hit, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.WithError(err).Warn("Cache lookup failed, fetching from API")
		return nil
	}
	if !hit {
		return nil
	}
	var data domain.ChannelData
	if err := json.Unmarshal([]byte(cached), &data); err != nil {
		s.log.WithError(err).Warn("Corrupted cache entry, fetching from API")
		return nil
	}
	return &data
}

// storeJSON caches a payload, logging rather than failing on store errors
func (s *Service) storeJSON(ctx context.Context, key string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.log.WithError(err).Error("Failed to marshal payload for caching")
		return
	}
	if err := s.store.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.log.WithError(err).Warn("Failed to cache payload")
	}
}

// assembleChannelData shapes a resolved channel plus its top videos into the
// final response. Every numeric and time field is formatted here so the
// consuming UI performs no parsing.
func assembleChannelData(channel *ytapi.Channel, videos []domain.VideoSummary, id domain.ChannelIdentifier) *domain.ChannelData {
	data := &domain.ChannelData{
		CustomURL: "@" + id.Value,
		TopVideos: videos,
		Tags:      []string{},
		Topics:    []string{},
	}

	if channel.Snippet != nil {
		data.Name = channel.Snippet.Title
		data.Description = channel.Snippet.Description
		data.PublishedAt = FormatRelativeAge(channel.Snippet.PublishedAt)
		if channel.Snippet.CustomUrl != "" {
			data.CustomURL = channel.Snippet.CustomUrl
		}
		if t := channel.Snippet.Thumbnails; t != nil {
			if t.Default != nil {
				data.Thumbnails.Default = t.Default.Url
			}
			if t.Medium != nil {
				data.Thumbnails.Medium = t.Medium.Url
			}
			if t.High != nil {
				data.Thumbnails.High = t.High.Url
			}
		}
	}

	subscribers, totalViews := "0", "0"
	if channel.Statistics != nil {
		subscribers = strconv.FormatUint(channel.Statistics.SubscriberCount, 10)
		totalViews = strconv.FormatUint(channel.Statistics.ViewCount, 10)
	}
	data.Subscribers = FormatCount(subscribers)
	data.TotalViews = FormatCount(totalViews)

	if channel.TopicDetails != nil {
		for _, category := range channel.TopicDetails.TopicCategories {
			topic := category
			if i := strings.LastIndex(topic, "/"); i >= 0 {
				topic = topic[i+1:]
			}
			topic = strings.ReplaceAll(topic, "_", " ")
			if topic != "" {
				data.Topics = append(data.Topics, topic)
			}
		}
	}

	if channel.BrandingSettings != nil {
		if channel.BrandingSettings.Channel != nil {
			for _, tag := range strings.Split(channel.BrandingSettings.Channel.Keywords, ",") {
				if trimmed := strings.TrimSpace(tag); trimmed != "" {
					data.Tags = append(data.Tags, trimmed)
				}
			}
		}
		if channel.BrandingSettings.Image != nil {
			data.BannerURL = channel.BrandingSettings.Image.BannerExternalUrl
		}
	}

	return data
}

// rawVideoData maps a platform video record into the raw metadata shape
func rawVideoData(video *ytapi.Video) *domain.VideoData {
	data := &domain.VideoData{
		VideoID: video.Id,
		Tags:    []string{},
	}

	if video.Snippet != nil {
		data.Title = video.Snippet.Title
		data.Description = video.Snippet.Description
		data.PublishedAt = video.Snippet.PublishedAt
		if len(video.Snippet.Tags) > 0 {
			data.Tags = video.Snippet.Tags
		}
		if t := video.Snippet.Thumbnails; t != nil {
			if t.Default != nil {
				data.Thumbnails.Default = t.Default.Url
			}
			if t.Medium != nil {
				data.Thumbnails.Medium = t.Medium.Url
			}
			if t.High != nil {
				data.Thumbnails.High = t.High.Url
			}
			if t.Maxres != nil {
				data.Thumbnails.Maxres = t.Maxres.Url
			}
		}
	}

	if video.Statistics != nil {
		data.ViewCount = strconv.FormatUint(video.Statistics.ViewCount, 10)
		data.LikeCount = strconv.FormatUint(video.Statistics.LikeCount, 10)
		data.CommentCount = strconv.FormatUint(video.Statistics.CommentCount, 10)
	}

	return data
}
