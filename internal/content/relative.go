package content

import (
	"fmt"
	"time"
)

// DateLayout is used once a timestamp is a year or more in the past.
const DateLayout = "Jan 2, 2006"

// RelativeTime renders then relative to now. Future instants read "Just now".
func RelativeTime(then, now time.Time) string {
	seconds := int64(now.Sub(then) / time.Second)
	if seconds < 60 {
		return "Just now"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return plural(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}

	days := hours / 24
	if days < 7 {
		return plural(days, "day")
	}

	if weeks := days / 7; weeks < 4 {
		return plural(weeks, "week")
	}

	if months := days / 30; months < 12 {
		return plural(months, "month")
	}

	return then.UTC().Format(DateLayout)
}

// FormatRelative parses an ISO-8601 timestamp and renders it with RelativeTime.
func FormatRelative(iso string, now time.Time) (string, error) {
	t, err := ParseTimestamp(iso)
	if err != nil {
		return "", err
	}
	return RelativeTime(t, now), nil
}

// ParseTimestamp accepts RFC 3339 with or without fractional seconds, and a bare date.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
