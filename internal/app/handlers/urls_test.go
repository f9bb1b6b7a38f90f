package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage/mocks"
)

func TestCreateShortURLHandler(t *testing.T) {
	testServer := newTestServer(t, newMapStorage())

	response, body := postForm(t, testServer, "/api/shorturl", "url="+url.QueryEscape("https://example.com/a?b=c"))
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/json", response.Header.Get("Content-Type"))
	created := decode[map[string]string](t, body)
	assert.Equal(t, "https://example.com/a?b=c", created["original_url"])
	assert.Len(t, created["short_url"], 16)

	response, body = doRequest(
		t, testServer, http.MethodPost, "/api/shorturl",
		"application/json", strings.NewReader(`{"url":"https://example.com/a?b=c"}`),
	)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, toJSON(t, created), body)

	response, _ = doRequest(t, testServer, http.MethodGet, "/api/shorturl/"+created["short_url"], "", nil)
	assert.Equal(t, http.StatusFound, response.StatusCode)
	assert.Equal(t, "https://example.com/a?b=c", response.Header.Get("Location"))
}

func TestCreateShortURLHandlerErrors(t *testing.T) {
	testServer := newTestServer(t, newMapStorage())

	testCases := []struct {
		name        string
		contentType string
		body        string
		want        want
	}{
		{
			name:        "responses with bad request if url has no protocol",
			contentType: "application/x-www-form-urlencoded",
			body:        "url=example.com",
			want: want{
				code:        http.StatusBadRequest,
				response:    `{"error":"invalid url"}`,
				contentType: "application/json",
			},
		},
		{
			name:        "responses with bad request if url is missing",
			contentType: "application/x-www-form-urlencoded",
			body:        "",
			want: want{
				code:        http.StatusBadRequest,
				response:    `{"error":"invalid url"}`,
				contentType: "application/json",
			},
		},
		{
			name:        "responses with bad request if body is not valid JSON",
			contentType: "application/json",
			body:        `{"url":`,
			want: want{
				code:        http.StatusBadRequest,
				response:    `{"error":"invalid url"}`,
				contentType: "application/json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response, body := doRequest(t, testServer, http.MethodPost, "/api/shorturl", tc.contentType, strings.NewReader(tc.body))

			assert.Equal(t, tc.want.code, response.StatusCode)
			assert.Equal(t, tc.want.contentType, response.Header.Get("Content-Type"))
			assert.JSONEq(t, tc.want.response, body)
		})
	}
}

func TestRedirectToOriginalURLHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		storageMock.EXPECT().
			FindShortURL(gomock.Any(), "123").
			Return(models.ShortURL{ID: "123", OriginalURL: "http://example.com"}, nil),
		storageMock.EXPECT().
			FindShortURL(gomock.Any(), "456").
			Return(models.ShortURL{}, storage.ErrNotFound),
		storageMock.EXPECT().
			FindShortURL(gomock.Any(), "789").
			Return(models.ShortURL{}, errors.New("connection refused")),
	)
	testServer := newTestServer(t, storageMock)

	testCases := []struct {
		name     string
		path     string
		want     want
		location string
	}{
		{
			name:     "responses with found status",
			path:     "/api/shorturl/123",
			location: "http://example.com",
			want: want{
				code:        http.StatusFound,
				response:    "<a href=\"http://example.com\">Found</a>.\n\n",
				contentType: "text/html; charset=utf-8",
			},
		},
		{
			name: "responses with not found if id is unknown",
			path: "/api/shorturl/456",
			want: want{
				code:        http.StatusNotFound,
				response:    "URL not found\n",
				contentType: "text/plain; charset=utf-8",
			},
		},
		{
			name: "responses with internal error if storage fails",
			path: "/api/shorturl/789",
			want: want{
				code:        http.StatusInternalServerError,
				response:    "{\"error\":\"An error has occurred\"}\n",
				contentType: "application/json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response, body := doRequest(t, testServer, http.MethodGet, tc.path, "", nil)

			assert.Equal(t, tc.want.code, response.StatusCode)
			assert.Equal(t, tc.want.contentType, response.Header.Get("Content-Type"))
			assert.Equal(t, tc.want.response, body)
			assert.Equal(t, tc.location, response.Header.Get("Location"))
		})
	}
}

func TestCreateShortURLHandlerStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	storageMock.EXPECT().
		InsertShortURL(gomock.Any(), "https://example.com").
		Return(models.ShortURL{}, false, errors.New("disk full"))
	testServer := newTestServer(t, storageMock)

	response, body := postForm(t, testServer, "/api/shorturl", "url=https://example.com")
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.JSONEq(t, `{"error":"An error has occurred"}`, body)
}
