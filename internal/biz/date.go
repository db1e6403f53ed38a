package biz

import (
	"strings"
	"time"
)

// DateLayout is the date format the cinema API expects in query parameters.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// FormatDate formats t as YYYY-MM-DD in UTC. The zero time yields "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// NormalizeDate rewrites a date-like string as YYYY-MM-DD.
// Input that does not parse is returned unchanged.
func NormalizeDate(s string) string {
	value := strings.TrimSpace(s)
	if value == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatDate(t)
		}
	}
	return s
}

// ParseDateTime parses the date-time strings the cinema API emits.
// Values without a zone are read in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04", "2006-01-02 15:04:05", DateLayout} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NextDays returns n consecutive YYYY-MM-DD dates starting with the day of now in loc.
func NextDays(now time.Time, n int, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i).Format(DateLayout))
	}
	return days
}
