package services

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
)

// Largest absolute Unix milliseconds value accepted as a date
const maxUnixMilli = 8_640_000_000_000_000

var timestampLayouts = []string{
	dateOnlyLayout,
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// ParseTimestamp converts raw date or Unix milliseconds to a Timestamp.
// Empty raw yields now.
func ParseTimestamp(raw string, now time.Time) (models.Timestamp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return newTimestamp(now), nil
	}

	if isInteger(raw) {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ms > maxUnixMilli || ms < -maxUnixMilli {
			return models.Timestamp{}, ErrInvalidDate
		}

		return newTimestamp(time.UnixMilli(ms)), nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return newTimestamp(t), nil
		}
	}

	return models.Timestamp{}, ErrInvalidDate
}

func newTimestamp(t time.Time) models.Timestamp {
	return models.Timestamp{
		Unix: t.UnixMilli(),
		UTC:  t.UTC().Format(http.TimeFormat),
	}
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
