package utils

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormatDate renders a nullable DATE column as YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ParseDate parses an optional YYYY-MM-DD value. Nil or blank input yields nil.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NullIfEmpty maps blank strings to nil so they are stored as NULL.
func NullIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// TrimPtr trims the pointed string and returns nil when nothing remains.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return NullIfEmpty(strings.TrimSpace(*s))
}
