package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ytlens/internal/domain"
)

func TestExtractChannelIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantKind domain.IdentifierKind
		want     string
	}{
		{
			name:     "handle URL",
			url:      "https://www.youtube.com/@example",
			wantKind: domain.IdentifierHandle,
			want:     "example",
		},
		{
			name:     "bare handle URL without scheme",
			url:      "youtube.com/@example",
			wantKind: domain.IdentifierHandle,
			want:     "example",
		},
		{
			name:     "handle with query string",
			url:      "https://youtube.com/@creator?sub_confirmation=1",
			wantKind: domain.IdentifierHandle,
			want:     "creator",
		},
		{
			name:     "channel ID URL keeps casing",
			url:      "https://www.youtube.com/channel/UCabc123_-XY",
			wantKind: domain.IdentifierChannelID,
			want:     "UCabc123_-XY",
		},
		{
			name:     "legacy username URL",
			url:      "https://www.youtube.com/user/oldschool",
			wantKind: domain.IdentifierUsername,
			want:     "oldschool",
		},
		{
			name:     "custom slug URL",
			url:      "https://www.youtube.com/somecreator",
			wantKind: domain.IdentifierSlug,
			want:     "somecreator",
		},
		{
			name:     "bare handle text",
			url:      "@justahandle",
			wantKind: domain.IdentifierHandle,
			want:     "justahandle",
		},
		{
			name:     "free text falls through unchanged",
			url:      "some search term",
			wantKind: domain.IdentifierSlug,
			want:     "some search term",
		},
		{
			name:     "surrounding whitespace trimmed",
			url:      "  youtube.com/@spaced  ",
			wantKind: domain.IdentifierHandle,
			want:     "spaced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractChannelIdentifier(tt.url)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestExtractChannelIdentifier_NeverEmpty(t *testing.T) {
	for _, url := range []string{"", "   ", "/", "@"} {
		got := ExtractChannelIdentifier(url)
		assert.NotNil(t, got.Value, "url %q", url)
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "standard watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "watch URL with extra params",
			url:    "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ&t=42",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "shortened URL",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "shortened URL with timestamp",
			url:    "https://youtu.be/dQw4w9WgXcQ?t=10",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "embed URL",
			url:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "shorts URL",
			url:    "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "no scheme",
			url:    "youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "mobile subdomain",
			url:    "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "foreign host with v parameter rejected",
			url:    "https://evil.example.com/watch?v=dQw4w9WgXcQ",
			wantOK: false,
		},
		{
			name:   "lookalike host rejected",
			url:    "https://youtube.com.evil.example.com/watch?v=dQw4w9WgXcQ",
			wantOK: false,
		},
		{
			name:   "channel URL is not a video URL",
			url:    "https://www.youtube.com/@example",
			wantOK: false,
		},
		{
			name:   "short ID rejected",
			url:    "https://youtu.be/short",
			wantOK: false,
		},
		{
			name:   "empty input",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
				assert.Len(t, id, 11)
			}
			assert.Equal(t, tt.wantOK, IsValidVideoURL(tt.url))
		})
	}
}
