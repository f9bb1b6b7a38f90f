package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage/mocks"
)

func newMapStorage() *storage.MapStorage {
	return storage.NewMapStorage(nil, storage.StdRandHexStringGenerator{})
}

func TestIsValidURL(t *testing.T) {
	testCases := []struct {
		url  string
		want bool
	}{
		{url: "https://example.com", want: true},
		{url: "http://example.com/path?q=1#frag", want: true},
		{url: "ftp://files.example.org/a.txt", want: true},
		{url: "https://sub.example.co.uk:8080", want: true},
		{url: "http://127.0.0.1:3000/", want: true},
		{url: "HTTPS://EXAMPLE.COM", want: true},
		{url: "", want: false},
		{url: "example.com", want: false},
		{url: "not a url", want: false},
		{url: "ftp:/example.com", want: false},
		{url: "mailto:user@example.com", want: false},
		{url: "javascript://example.com", want: false},
		{url: "http://-example.com", want: false},
		{url: "http://exa mple.com", want: false},
		{url: "http://example.com/a b", want: false},
		{url: "http://", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			assert.Equal(t, tc.want, services.IsValidURL(tc.url))
		})
	}
}

func TestShortenReturnsSameRecordForSameURL(t *testing.T) {
	shortener := services.NewURLShortener(newMapStorage())
	ctx := context.Background()

	first, err := shortener.Shorten(ctx, "https://example.com")
	require.NoError(t, err)
	second, err := shortener.Shorten(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := shortener.Shorten(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	original, err := shortener.Resolve(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", original)
}

func TestShortenRejectsInvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	shortener := services.NewURLShortener(storageMock)

	_, err := shortener.Shorten(context.Background(), "example.com")
	assert.ErrorIs(t, err, services.ErrInvalidURL)
}

func TestShortenStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	cause := errors.New("disk full")
	storageMock.EXPECT().
		InsertShortURL(gomock.Any(), "https://example.com").
		Return(models.ShortURL{}, false, cause)
	shortener := services.NewURLShortener(storageMock)

	_, err := shortener.Shorten(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, services.ErrStorageFailure)
	assert.ErrorIs(t, err, cause)
}

func TestResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		storageMock.EXPECT().
			FindShortURL(gomock.Any(), "abc").
			Return(models.ShortURL{ID: "abc", OriginalURL: "https://example.com"}, nil),
		storageMock.EXPECT().
			FindShortURL(gomock.Any(), "missing").
			Return(models.ShortURL{}, storage.ErrNotFound),
		storageMock.EXPECT().
			FindShortURL(gomock.Any(), "abc").
			Return(models.ShortURL{}, errors.New("connection refused")),
	)
	shortener := services.NewURLShortener(storageMock)
	ctx := context.Background()

	original, err := shortener.Resolve(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", original)

	_, err = shortener.Resolve(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = shortener.Resolve(ctx, "abc")
	assert.ErrorIs(t, err, services.ErrStorageFailure)
}

func TestConcurrentShortenCreatesOneRecord(t *testing.T) {
	shortener := services.NewURLShortener(newMapStorage())
	const n = 32

	var wg sync.WaitGroup
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			record, err := shortener.Shorten(context.Background(), "https://example.com")
			if err == nil {
				ids[i] = record.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.NotEmpty(t, ids[0])
}
