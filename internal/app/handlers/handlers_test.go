package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ilya-burinskiy/utilapi/internal/app/handlers"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
)

type want struct {
	response    string
	contentType string
	code        int
}

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newHandlers(t require.TestingT, store storage.Storage, uploadsDir string) handlers.Handlers {
	analyser, err := services.NewFileAnalyser(store, uploadsDir)
	require.NoError(t, err)

	return handlers.NewHandlers(
		services.NewURLShortener(store),
		services.NewExerciseTracker(store).WithClock(func() time.Time { return fixedNow }),
		analyser,
	).WithClock(func() time.Time { return fixedNow })
}

func newTestServer(t *testing.T, store storage.Storage) *httptest.Server {
	testServer := httptest.NewServer(handlers.NewRouter(newHandlers(t, store, t.TempDir())))
	t.Cleanup(testServer.Close)

	return testServer
}

func newMapStorage() *storage.MapStorage {
	return storage.NewMapStorage(nil, storage.StdRandHexStringGenerator{})
}

func toJSON(t require.TestingT, v interface{}) string {
	result, err := json.Marshal(v)
	require.NoError(t, err)

	return string(result)
}

func doRequest(
	t *testing.T,
	testServer *httptest.Server,
	method, path, contentType string,
	body io.Reader) (*http.Response, string) {

	request, err := http.NewRequest(method, testServer.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	client := testServer.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	response, err := client.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response, string(responseBody)
}

func postForm(t *testing.T, testServer *httptest.Server, path, form string) (*http.Response, string) {
	return doRequest(t, testServer, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form))
}

func decode[T any](t *testing.T, body string) T {
	var result T
	require.NoError(t, json.Unmarshal([]byte(body), &result))

	return result
}
