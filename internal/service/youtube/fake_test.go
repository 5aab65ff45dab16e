package youtube

import (
	"context"

	ytapi "google.golang.org/api/youtube/v3"
)

// fakeAPI is a scriptable DataAPI that records every call in order.
type fakeAPI struct {
	channelsByID       map[string]*ytapi.Channel
	channelsByUsername map[string]*ytapi.Channel
	searchChannelID    string
	searchResults      []*ytapi.SearchResult
	statsVideos        []*ytapi.Video
	video              *ytapi.Video

	errChannelByID       error
	errChannelByUsername error
	errSearchChannelID   error
	errSearchTopVideos   error
	errVideosByID        error
	errVideoByID         error

	calls []string
}

func (f *fakeAPI) ChannelByID(_ context.Context, id string) (*ytapi.Channel, error) {
	f.calls = append(f.calls, "ChannelByID")
	if f.errChannelByID != nil {
		return nil, f.errChannelByID
	}
	return f.channelsByID[id], nil
}

func (f *fakeAPI) ChannelByUsername(_ context.Context, username string) (*ytapi.Channel, error) {
	f.calls = append(f.calls, "ChannelByUsername")
	if f.errChannelByUsername != nil {
		return nil, f.errChannelByUsername
	}
	return f.channelsByUsername[username], nil
}

func (f *fakeAPI) SearchChannelID(_ context.Context, query string) (string, error) {
	f.calls = append(f.calls, "SearchChannelID")
	if f.errSearchChannelID != nil {
		return "", f.errSearchChannelID
	}
	return f.searchChannelID, nil
}

func (f *fakeAPI) SearchTopVideos(_ context.Context, channelID string, maxResults int64) ([]*ytapi.SearchResult, error) {
	f.calls = append(f.calls, "SearchTopVideos")
	if f.errSearchTopVideos != nil {
		return nil, f.errSearchTopVideos
	}
	return f.searchResults, nil
}

func (f *fakeAPI) VideosByID(_ context.Context, ids []string) ([]*ytapi.Video, error) {
	f.calls = append(f.calls, "VideosByID")
	if f.errVideosByID != nil {
		return nil, f.errVideosByID
	}
	return f.statsVideos, nil
}

func (f *fakeAPI) VideoByID(_ context.Context, id string) (*ytapi.Video, error) {
	f.calls = append(f.calls, "VideoByID")
	if f.errVideoByID != nil {
		return nil, f.errVideoByID
	}
	return f.video, nil
}
