package util

import (
	"time"
)

// Today returns midnight of now's calendar day in loc (UTC when loc is nil).
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// TrailingWindow returns the window of the given number of days ending today:
// end is today in loc, start is end minus days calendar days.
func TrailingWindow(now time.Time, loc *time.Location, days int) (start, end time.Time) {
	end = Today(now, loc)
	start = end.AddDate(0, 0, -days)
	return start, end
}

// ParseOptionalDate parses a "YYYY-MM-DD" string; the empty string yields the zero time.
func ParseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
