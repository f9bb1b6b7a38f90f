package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilya-burinskiy/utilapi/internal/app/services"
)

type shortURLResponse struct {
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// Create short URL from form or JSON body
func (h Handlers) CreateShortURL(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, services.ErrInvalidURL)
		return
	}

	record, err := h.shortener.Shorten(r.Context(), body["url"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shortURLResponse{OriginalURL: record.OriginalURL, ShortURL: record.ID})
}

// Redirect to original URL
func (h Handlers) RedirectToOriginalURL(w http.ResponseWriter, r *http.Request) {
	originalURL, err := h.shortener.Resolve(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, "URL not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, originalURL, http.StatusFound)
}
