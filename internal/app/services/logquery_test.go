package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilya-burinskiy/utilapi/internal/app/services"
)

func TestParseLogQuery(t *testing.T) {
	query, err := services.ParseLogQuery("2023-01-15", "2023-02-01T10:00:00Z", "2")
	require.NoError(t, err)
	require.NotNil(t, query.From)
	require.NotNil(t, query.To)
	require.NotNil(t, query.Limit)
	assert.Equal(t, date(2023, 1, 15), *query.From)
	assert.Equal(t, date(2023, 2, 1), *query.To)
	assert.Equal(t, 2, *query.Limit)

	query, err = services.ParseLogQuery("", "", "")
	require.NoError(t, err)
	assert.Nil(t, query.From)
	assert.Nil(t, query.To)
	assert.Nil(t, query.Limit)

	query, err = services.ParseLogQuery("", "", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, *query.Limit)
}

func TestParseLogQueryErrors(t *testing.T) {
	testCases := []struct {
		name      string
		from      string
		to        string
		limit     string
		wantField string
	}{
		{name: "invalid from", from: "01/15/2023", wantField: "from"},
		{name: "invalid to", to: "tomorrow", wantField: "to"},
		{name: "negative limit", limit: "-1", wantField: "limit"},
		{name: "non numeric limit", limit: "ten", wantField: "limit"},
		{name: "fractional limit", limit: "1.5", wantField: "limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := services.ParseLogQuery(tc.from, tc.to, tc.limit)
			var validationErr *services.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}
