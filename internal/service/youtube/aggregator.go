package youtube

import (
	"context"
	"strconv"

	ytapi "google.golang.org/api/youtube/v3"

	"ytlens/internal/domain"
	"ytlens/pkg/logger"
)

// Aggregator fetches a channel's highest-viewed videos and joins them with
// their statistics. It never fails: channel data is still useful without
// videos, so every internal error degrades to an empty list.
type Aggregator struct {
	api DataAPI
	log *logger.Logger
}

// NewAggregator creates a top-video aggregator
func NewAggregator(api DataAPI, log *logger.Logger) *Aggregator {
	return &Aggregator{api: api, log: log}
}

// TopVideos returns up to maxResults formatted video summaries for a
// channel, ordered by view count. The statistics batch call is left-joined
// by video ID; a video missing from it keeps zero/blank stats. Search order
// is preserved through the join.
func (a *Aggregator) TopVideos(ctx context.Context, channelID string, maxResults int64) []domain.VideoSummary {
	results, err := a.api.SearchTopVideos(ctx, channelID, maxResults)
	if err != nil {
		a.log.WithError(err).WithField("channel_id", channelID).Warn("Top video search failed")
		return []domain.VideoSummary{}
	}

	ids := make([]string, 0, len(results))
	for _, result := range results {
		if result.Id != nil && result.Id.VideoId != "" {
			ids = append(ids, result.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return []domain.VideoSummary{}
	}

	stats, err := a.api.VideosByID(ctx, ids)
	if err != nil {
		a.log.WithError(err).WithField("channel_id", channelID).Warn("Video statistics fetch failed")
		return []domain.VideoSummary{}
	}

	statsByID := make(map[string]*ytapi.Video, len(stats))
	for _, video := range stats {
		statsByID[video.Id] = video
	}

	summaries := make([]domain.VideoSummary, 0, len(results))
	for _, result := range results {
		if result.Id == nil || result.Id.VideoId == "" {
			continue
		}

		views, likes, comments := "0", "0", "0"
		durationCode := ""
		if video := statsByID[result.Id.VideoId]; video != nil {
			if video.Statistics != nil {
				views = strconv.FormatUint(video.Statistics.ViewCount, 10)
				likes = strconv.FormatUint(video.Statistics.LikeCount, 10)
				comments = strconv.FormatUint(video.Statistics.CommentCount, 10)
			}
			if video.ContentDetails != nil {
				durationCode = video.ContentDetails.Duration
			}
		}

		var title, thumbnail, publishedAt string
		if result.Snippet != nil {
			title = result.Snippet.Title
			publishedAt = result.Snippet.PublishedAt
			if result.Snippet.Thumbnails != nil && result.Snippet.Thumbnails.High != nil {
				thumbnail = result.Snippet.Thumbnails.High.Url
			}
		}

		summaries = append(summaries, domain.VideoSummary{
			Title:       title,
			Views:       FormatCount(views),
			Likes:       FormatCount(likes),
			Comments:    FormatCount(comments),
			Thumbnail:   thumbnail,
			PublishedAt: FormatRelativeAge(publishedAt),
			Duration:    FormatDuration(durationCode),
		})
	}

	return summaries
}
