package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilya-burinskiy/utilapi/internal/app/models"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
)

type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type userWithLogResponse struct {
	ID        string            `json:"_id"`
	Username  string            `json:"username"`
	Exercises []models.LogEntry `json:"exercises"`
}

// Create user
func (h Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, invalidBody(err))
		return
	}

	user, err := h.tracker.CreateUser(r.Context(), body["username"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Username: user.Username, ID: user.ID})
}

// List all users with their exercises
func (h Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]userWithLogResponse, len(users))
	for i, user := range users {
		exercises := make([]models.LogEntry, len(user.Exercises))
		for j, exercise := range user.Exercises {
			exercises[j] = models.LogEntry{
				Description: exercise.Description,
				Duration:    exercise.Duration,
				Date:        exercise.Date.Format(models.DateLayout),
			}
		}
		response[i] = userWithLogResponse{ID: user.ID, Username: user.Username, Exercises: exercises}
	}

	writeJSON(w, http.StatusOK, response)
}

// Add exercise to user's log
func (h Handlers) AddExercise(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		writeError(w, invalidBody(err))
		return
	}

	summary, err := h.tracker.AddExercise(
		r.Context(),
		chi.URLParam(r, "id"),
		models.ExerciseInput{
			Description: body["description"],
			Duration:    body["duration"],
			Date:        body["date"],
		},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Get user's exercise log filtered by from, to and limit query params
func (h Handlers) GetLog(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query, err := services.ParseLogQuery(params.Get("from"), params.Get("to"), params.Get("limit"))
	if err != nil {
		writeError(w, err)
		return
	}

	log, err := h.tracker.GetLog(r.Context(), chi.URLParam(r, "id"), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, log)
}
