package youtube

import (
	"regexp"
	"strings"

	"ytlens/internal/domain"
)

// Channel URL patterns, tried in priority order. Matching is
// case-insensitive but the captured value keeps its original casing:
// channel IDs are case-sensitive and lower-casing them would break the
// direct-ID resolution strategy.
var channelPatterns = []struct {
	kind domain.IdentifierKind
	re   *regexp.Regexp
}{
	{domain.IdentifierHandle, regexp.MustCompile(`@([^/?\s]+)`)},
	{domain.IdentifierChannelID, regexp.MustCompile(`(?i)channel/(UC[\w-]+)`)},
	{domain.IdentifierUsername, regexp.MustCompile(`(?i)user/([^/?\s]+)`)},
	{domain.IdentifierSlug, regexp.MustCompile(`(?i)youtube\.com/([^/?\s]+)`)},
}

// ExtractChannelIdentifier parses free-form channel URL text into a tagged
// identifier. It never fails: when no pattern matches it falls back to the
// last path segment, leaving "not found" to the resolver.
func ExtractChannelIdentifier(rawURL string) domain.ChannelIdentifier {
	trimmed := strings.TrimSpace(rawURL)

	for _, p := range channelPatterns {
		if m := p.re.FindStringSubmatch(trimmed); m != nil {
			return domain.ChannelIdentifier{
				Kind:  p.kind,
				Value: strings.TrimPrefix(m[1], "@"),
			}
		}
	}

	fallback := strings.TrimPrefix(trimmed, "@")
	if i := strings.LastIndex(fallback, "/"); i >= 0 {
		fallback = fallback[i+1:]
	}
	if fallback == "" {
		fallback = trimmed
	}
	return domain.ChannelIdentifier{Kind: domain.IdentifierSlug, Value: fallback}
}

// Video URL shapes accepted for the metadata and analysis endpoints. The
// host must belong to the platform and the captured ID must be exactly 11
// characters; a bare ?v= parameter on a foreign host does not qualify.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[\w-]+\.)*youtube\.com/watch\?(?:[^#\s]*&)?v=([\w-]{11})(?:[&#]|$)`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtu\.be/([\w-]{11})(?:[?&#/]|$)`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[\w-]+\.)*youtube\.com/embed/([\w-]{11})(?:[?&#/]|$)`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:[\w-]+\.)*youtube\.com/shorts/([\w-]{11})(?:[?&#/]|$)`),
}

// ExtractVideoID returns the 11-character video ID for a recognized
// watch, shortened, embed, or shorts URL
func ExtractVideoID(rawURL string) (string, bool) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", false
	}
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsValidVideoURL reports whether a URL matches one of the accepted shapes
func IsValidVideoURL(rawURL string) bool {
	_, ok := ExtractVideoID(rawURL)
	return ok
}
