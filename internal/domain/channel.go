package domain

// IdentifierKind tags which URL shape a channel identifier was extracted from.
type IdentifierKind string

const (
	IdentifierHandle    IdentifierKind = "handle"
	IdentifierChannelID IdentifierKind = "channel_id"
	IdentifierUsername  IdentifierKind = "username"
	IdentifierSlug      IdentifierKind = "slug"
)

// ChannelIdentifier is the normalized form of whatever the user pasted:
// an @handle, a UC... channel ID, a legacy username, or a free-text slug.
type ChannelIdentifier struct {
	Kind  IdentifierKind
	Value string
}

func (i ChannelIdentifier) String() string {
	return i.Value
}

// ChannelThumbnails holds the three thumbnail sizes returned for a channel
type ChannelThumbnails struct {
	Default string `json:"default"`
	Medium  string `json:"medium"`
	High    string `json:"high"`
}

// VideoSummary is one entry of a channel's top-video list. Every numeric and
// time field is pre-formatted for display; consumers never parse.
type VideoSummary struct {
	Title       string `json:"title"`
	Views       string `json:"views"`
	Likes       string `json:"likes"`
	Comments    string `json:"comments"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"publishedAt"`
	Duration    string `json:"duration"`
}

// ChannelData is the assembled channel payload returned to the client
type ChannelData struct {
	Name        string            `json:"name"`
	Subscribers string            `json:"subscribers"`
	TotalViews  string            `json:"totalViews"`
	Description string            `json:"description"`
	Thumbnails  ChannelThumbnails `json:"thumbnails"`
	BannerURL   string            `json:"bannerUrl"`
	PublishedAt string            `json:"publishedAt"`
	CustomURL   string            `json:"customUrl"`
	TopVideos   []VideoSummary    `json:"topVideos"`
	Tags        []string          `json:"tags"`
	Topics      []string          `json:"topics"`
}
