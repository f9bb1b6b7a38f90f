package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
)

const dateOnlyLayout = "2006-01-02"

// ParseLogQuery parses raw from, to and limit query values. Empty values are not applied.
func ParseLogQuery(from, to, limit string) (models.LogQuery, error) {
	var query models.LogQuery

	if from = strings.TrimSpace(from); from != "" {
		date, err := ParseDate(from)
		if err != nil {
			return models.LogQuery{}, NewValidationError("from", "must be a date in YYYY-MM-DD format")
		}
		query.From = &date
	}

	if to = strings.TrimSpace(to); to != "" {
		date, err := ParseDate(to)
		if err != nil {
			return models.LogQuery{}, NewValidationError("to", "must be a date in YYYY-MM-DD format")
		}
		query.To = &date
	}

	if limit = strings.TrimSpace(limit); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return models.LogQuery{}, NewValidationError("limit", "must be a non-negative integer")
		}
		query.Limit = &n
	}

	return query, nil
}

// ParseDate parses YYYY-MM-DD or RFC 3339 and truncates result to UTC midnight
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		date, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
	}

	return truncateToDate(date), nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
