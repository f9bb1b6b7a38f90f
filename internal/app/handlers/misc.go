package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ilya-burinskiy/utilapi/internal/app/services"
)

const maxUploadMemory = 32 << 20

// Hello
func (h Handlers) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"greeting": "hello API"})
}

// Convert date or Unix milliseconds to timestamp. Invalid dates are not an HTTP error.
func (h Handlers) Timestamp(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	timestamp, err := services.ParseTimestamp(raw, h.now())
	if err != nil {
		writeJSON(w, http.StatusOK, errorResponse{Error: "Invalid Date"})
		return
	}

	writeJSON(w, http.StatusOK, timestamp)
}

// WhoAmI
func (h Handlers) WhoAmI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.Introspect(r))
}

// Analyse uploaded file from multipart field upfile
func (h Handlers) AnalyseFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, services.NewValidationError("upfile", "is required"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("upfile")
	if err != nil {
		writeError(w, services.NewValidationError("upfile", "is required"))
		return
	}
	defer file.Close()

	metadata, err := h.analyser.Analyse(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, metadata)
}
