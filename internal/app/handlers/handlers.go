package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
)

const maxBodySize = 1 << 20

// URLShortener
type URLShortener interface {
	Shorten(ctx context.Context, rawURL string) (models.ShortURL, error)
	Resolve(ctx context.Context, id string) (string, error)
}

// ExerciseTracker
type ExerciseTracker interface {
	CreateUser(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	AddExercise(ctx context.Context, userID string, in models.ExerciseInput) (models.ExerciseSummary, error)
	GetLog(ctx context.Context, userID string, q models.LogQuery) (models.ExerciseLog, error)
}

// FileAnalyser
type FileAnalyser interface {
	Analyse(ctx context.Context, name, contentType string, size int64, content io.Reader) (models.FileMetadata, error)
}

type Handlers struct {
	shortener URLShortener
	tracker   ExerciseTracker
	analyser  FileAnalyser
	now       func() time.Time
}

func NewHandlers(
	shortener URLShortener,
	tracker ExerciseTracker,
	analyser FileAnalyser) Handlers {

	return Handlers{
		shortener: shortener,
		tracker:   tracker,
		analyser:  analyser,
		now:       time.Now,
	}
}

// WithClock returns a copy of handlers that take the current time from now
func (h Handlers) WithClock(now func() time.Time) Handlers {
	h.now = now
	return h
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Info("failed to encode response", zap.Error(err))
	}
}

// writeError translates service errors to HTTP responses
func writeError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.Is(err, services.ErrInvalidURL):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid url"})
	case errors.Is(err, services.ErrDuplicateUsername):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "username already exists"})
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "An error has occurred"})
	}
}

// parseBody reads string fields from a JSON or url-encoded form body
func parseBody(r *http.Request) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("failed to parse form: %w", err)
		}

		result := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			result[key] = r.PostForm.Get(key)
		}
		return result, nil
	}

	var body map[string]any
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	result := make(map[string]string, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case string:
			result[key] = v
		case json.Number:
			result[key] = v.String()
		case nil:
		default:
			result[key] = fmt.Sprint(v)
		}
	}

	return result, nil
}

func invalidBody(err error) error {
	return services.NewValidationError("body", err.Error())
}
