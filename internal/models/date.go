package models

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire format the backend uses for calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date that can unmarshal both RFC3339 and "YYYY-MM-DD" formats.
// It always marshals as "YYYY-MM-DD"; the zero Date marshals as null.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String returns the "YYYY-MM-DD" form, or "" for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	// Try parsing as RFC3339 full timestamp first
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		d.Time = t
		return nil
	}

	// Naive datetimes are what the backend emits for created_at columns
	t, err = time.Parse("2006-01-02T15:04:05.999999999", s)
	if err == nil {
		d.Time = t
		return nil
	}

	t, err = time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}
