package youtube

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// FormatCount abbreviates a platform count string: 2500000 -> "2.5M",
// 1500 -> "1.5K", 999 -> "999". Unparseable input becomes "0".
func FormatCount(count string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
	if err != nil {
		return "0"
	}
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatDuration renders an ISO-8601 duration code as H:MM:SS, or M:SS when
// there is no hour component. Anything unparseable becomes "0:00".
func FormatDuration(code string) string {
	d, err := duration.Parse(code)
	if err != nil {
		return "0:00"
	}

	td := d.ToTimeDuration()
	hours := int(td / time.Hour)
	minutes := int(td/time.Minute) % 60
	seconds := int(td/time.Second) % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatRelativeAge renders an RFC 3339 timestamp as a coarse relative age:
// "<n> days ago", "<n> months ago", "<n> years ago"
func FormatRelativeAge(isoTimestamp string) string {
	return formatRelativeAgeAt(isoTimestamp, time.Now())
}

// formatRelativeAgeAt uses pure floor division on whole days; months are 30
// days and years 365, with no calendar arithmetic.
func formatRelativeAgeAt(isoTimestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, isoTimestamp)
	if err != nil {
		return ""
	}

	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
