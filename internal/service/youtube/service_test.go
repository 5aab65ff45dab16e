package youtube

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytapi "google.golang.org/api/youtube/v3"

	"ytlens/internal/cache"
	"ytlens/pkg/errors"
)

func fullChannel() *ytapi.Channel {
	return &ytapi.Channel{
		Id: "UCfull",
		Snippet: &ytapi.ChannelSnippet{
			Title:       "Full Channel",
			Description: "A channel about everything",
			CustomUrl:   "@fullchannel",
			PublishedAt: time.Now().Add(-10 * 24 * time.Hour).UTC().Format(time.RFC3339),
			Thumbnails: &ytapi.ThumbnailDetails{
				Default: &ytapi.Thumbnail{Url: "https://img.example/default.jpg"},
				Medium:  &ytapi.Thumbnail{Url: "https://img.example/medium.jpg"},
				High:    &ytapi.Thumbnail{Url: "https://img.example/high.jpg"},
			},
		},
		Statistics: &ytapi.ChannelStatistics{
			SubscriberCount: 2500000,
			ViewCount:       1500,
		},
		TopicDetails: &ytapi.ChannelTopicDetails{
			TopicCategories: []string{
				"https://en.wikipedia.org/wiki/Video_game_culture",
				"https://en.wikipedia.org/wiki/Music",
			},
		},
		BrandingSettings: &ytapi.ChannelBrandingSettings{
			Channel: &ytapi.ChannelSettings{Keywords: "gaming, music , ,reviews"},
			Image:   &ytapi.ImageSettings{BannerExternalUrl: "https://img.example/banner.jpg"},
		},
	}
}

func TestService_GetChannelData_AssemblesChannel(t *testing.T) {
	api := &fakeAPI{
		channelsByUsername: map[string]*ytapi.Channel{"fullchannel": fullChannel()},
	}
	svc := NewService(api, cache.NewMemory(), time.Hour, testLogger(t))

	data, err := svc.GetChannelData(context.Background(), "https://youtube.com/@fullchannel")
	require.NoError(t, err)

	assert.Equal(t, "Full Channel", data.Name)
	assert.Equal(t, "2.5M", data.Subscribers)
	assert.Equal(t, "1.5K", data.TotalViews)
	assert.Equal(t, "@fullchannel", data.CustomURL)
	assert.Equal(t, "https://img.example/high.jpg", data.Thumbnails.High)
	assert.Equal(t, "https://img.example/banner.jpg", data.BannerURL)
	assert.Equal(t, "10 days ago", data.PublishedAt)
	assert.Equal(t, []string{"Video game culture", "Music"}, data.Topics)
	assert.Equal(t, []string{"gaming", "music", "reviews"}, data.Tags)
	assert.NotNil(t, data.TopVideos)
}

func TestService_GetChannelData_CacheShortCircuitsPipeline(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	api := &fakeAPI{
		channelsByUsername: map[string]*ytapi.Channel{"fullchannel": fullChannel()},
	}
	svc := NewService(api, cache.NewMemoryWithClock(clock), time.Hour, testLogger(t))

	_, err := svc.GetChannelData(context.Background(), "https://youtube.com/@fullchannel")
	require.NoError(t, err)
	callsAfterFirst := len(api.calls)
	assert.Greater(t, callsAfterFirst, 0)

	// Within the TTL the collaborator must not be invoked at all, and key
	// normalization must fold case and whitespace.
	_, err = svc.GetChannelData(context.Background(), "  HTTPS://YouTube.com/@FullChannel ")
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, len(api.calls))

	// Past the TTL the entry is stale: the pipeline runs again and the
	// entry is overwritten.
	now = now.Add(time.Hour + time.Minute)
	_, err = svc.GetChannelData(context.Background(), "https://youtube.com/@fullchannel")
	require.NoError(t, err)
	assert.Greater(t, len(api.calls), callsAfterFirst)

	callsAfterRefresh := len(api.calls)
	_, err = svc.GetChannelData(context.Background(), "https://youtube.com/@fullchannel")
	require.NoError(t, err)
	assert.Equal(t, callsAfterRefresh, len(api.calls))
}

func TestService_GetChannelData_NotFoundNamesIdentifier(t *testing.T) {
	svc := NewService(&fakeAPI{}, cache.NewMemory(), time.Hour, testLogger(t))

	_, err := svc.GetChannelData(context.Background(), "youtube.com/@example")

	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	assert.Contains(t, appErr.Message, "example")
}

func TestService_GetChannelData_EmptyURLRejected(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, cache.NewMemory(), time.Hour, testLogger(t))

	_, err := svc.GetChannelData(context.Background(), "   ")

	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Empty(t, api.calls)
}

func TestService_GetVideoData_InvalidURLRejectedBeforeAPICall(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, cache.NewMemory(), time.Hour, testLogger(t))

	_, err := svc.GetVideoData(context.Background(), "https://example.com/watch?v=dQw4w9WgXcQ")

	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Empty(t, api.calls)
}

func TestService_GetVideoData_ReturnsRawFields(t *testing.T) {
	api := &fakeAPI{
		video: &ytapi.Video{
			Id: "dQw4w9WgXcQ",
			Snippet: &ytapi.VideoSnippet{
				Title:       "Some Video",
				Description: "desc",
				Tags:        []string{"one", "two"},
				PublishedAt: "2024-01-01T00:00:00Z",
				Thumbnails: &ytapi.ThumbnailDetails{
					Default: &ytapi.Thumbnail{Url: "https://img.example/d.jpg"},
					Maxres:  &ytapi.Thumbnail{Url: "https://img.example/max.jpg"},
				},
			},
			Statistics: &ytapi.VideoStatistics{
				ViewCount:    123456,
				LikeCount:    789,
				CommentCount: 12,
			},
		},
	}
	svc := NewService(api, cache.NewMemory(), time.Hour, testLogger(t))

	video, err := svc.GetVideoData(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	// Raw numeric strings on this path, not abbreviated.
	assert.Equal(t, "123456", video.ViewCount)
	assert.Equal(t, "789", video.LikeCount)
	assert.Equal(t, "12", video.CommentCount)
	assert.Equal(t, "Some Video", video.Title)
	assert.Equal(t, []string{"one", "two"}, video.Tags)
	assert.Equal(t, "https://img.example/max.jpg", video.Thumbnails.Maxres)
}

func TestService_GetVideoData_NotFound(t *testing.T) {
	svc := NewService(&fakeAPI{}, cache.NewMemory(), time.Hour, testLogger(t))

	_, err := svc.GetVideoData(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	assert.Contains(t, appErr.Message, "dQw4w9WgXcQ")
}
