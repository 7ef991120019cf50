package model

import (
	"fmt"
	"strings"
	"time"
)

// Time wraps time.Time with lenient JSON decoding. Persisted records and
// backup documents carry RFC 3339 timestamps, but dates entered by hand or
// returned by image analysis arrive as bare YYYY-MM-DD strings; both decode.
// Time-of-day components, when present, are preserved.
type Time struct {
	time.Time
}

const dateOnly = "2006-01-02"

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// ParseTime accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func ParseTime(s string) (Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Time{Time: t}, nil
	}
	if t, err := time.ParseInLocation(dateOnly, s, time.Local); err == nil {
		return Time{Time: t}, nil
	}
	return Time{}, fmt.Errorf("unrecognized date %q (want RFC 3339 or YYYY-MM-DD)", s)
}

// MarshalJSON encodes as an RFC 3339 string.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON decodes RFC 3339 timestamps and bare dates.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Time{}
		return nil
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
