package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire format of every date-only field.
const DateLayout = "2006-01-02"

// AuditFields holds the timestamps the API stamps on every entity.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ParseDate accepts a date-only string or a full RFC 3339 timestamp. Only the
// calendar date is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DateOnly truncates an ISO timestamp to its YYYY-MM-DD prefix.
func DateOnly(s string) string {
	if len(s) >= len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}
