package domain

// VideoThumbnails holds the thumbnail URL set for a single video
type VideoThumbnails struct {
	Default string `json:"default"`
	Medium  string `json:"medium"`
	High    string `json:"high"`
	Maxres  string `json:"maxres,omitempty"`
}

// VideoData is the raw metadata for one video as reported by the platform.
// Counts stay numeric strings; formatting happens client-side on this path.
type VideoData struct {
	VideoID      string          `json:"videoId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Thumbnails   VideoThumbnails `json:"thumbnails"`
	Tags         []string        `json:"tags"`
	ViewCount    string          `json:"viewCount"`
	LikeCount    string          `json:"likeCount"`
	CommentCount string          `json:"commentCount"`
	PublishedAt  string          `json:"publishedAt"`
}
