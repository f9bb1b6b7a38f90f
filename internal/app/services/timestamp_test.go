package services_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
)

func TestParseTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		raw  string
		want models.Timestamp
	}{
		{raw: "", want: models.Timestamp{Unix: 1710072000000, UTC: "Sun, 10 Mar 2024 12:00:00 GMT"}},
		{raw: "2015-12-25", want: models.Timestamp{Unix: 1451001600000, UTC: "Fri, 25 Dec 2015 00:00:00 GMT"}},
		{raw: "1451001600000", want: models.Timestamp{Unix: 1451001600000, UTC: "Fri, 25 Dec 2015 00:00:00 GMT"}},
		{raw: "0", want: models.Timestamp{Unix: 0, UTC: "Thu, 01 Jan 1970 00:00:00 GMT"}},
		{raw: "2015-12-25T10:30:00Z", want: models.Timestamp{Unix: 1451039400000, UTC: "Fri, 25 Dec 2015 10:30:00 GMT"}},
		{raw: "2015-12-25T10:30:00+02:00", want: models.Timestamp{Unix: 1451032200000, UTC: "Fri, 25 Dec 2015 08:30:00 GMT"}},
		{raw: "December 25, 2015", want: models.Timestamp{Unix: 1451001600000, UTC: "Fri, 25 Dec 2015 00:00:00 GMT"}},
		{raw: "25 December 2015", want: models.Timestamp{Unix: 1451001600000, UTC: "Fri, 25 Dec 2015 00:00:00 GMT"}},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := services.ParseTimestamp(tc.raw, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, raw := range []string{"this-is-not-a-date", "2015-13-45", "99999999999999999999", "-"} {
		t.Run(raw, func(t *testing.T) {
			_, err := services.ParseTimestamp(raw, time.Now())
			assert.ErrorIs(t, err, services.ErrInvalidDate)
		})
	}
}

func TestIntrospect(t *testing.T) {
	r := httptest.NewRequest("GET", "/whoami", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	r.Header.Set("Accept-Language", "en-US,en;q=0.9")
	r.Header.Set("User-Agent", "curl/8.0")

	assert.Equal(
		t,
		models.Identity{IPAddress: "10.0.0.1", Language: "en-US,en;q=0.9", Software: "curl/8.0"},
		services.Introspect(r),
	)

	r.Header.Set("X-Forwarded-For", " 203.0.113.7, 10.0.0.2")
	assert.Equal(t, "203.0.113.7", services.Introspect(r).IPAddress)
}
