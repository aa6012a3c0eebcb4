package util

import "time"

// FormatRFC3339 formats a time as RFC3339 in UTC, the wire format for all
// timestamps in this service.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatRFC3339Ptr formats an optional time, returning nil for nil.
func FormatRFC3339Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatRFC3339(*t)
	return &s
}

// ParseRFC3339 parses an RFC3339 timestamp string.
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
