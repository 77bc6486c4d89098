package dbx

import "time"

// timeLayout is fixed-width with a trailing Z so stored values compare
// lexicographically in the same order as the instants they encode. Range
// queries on timestamp columns rely on this.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// FormatTime encodes t for storage in a TEXT column.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime decodes a value written by FormatTime. RFC 3339 values are
// accepted as a fallback for rows written by other tools.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
