package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ilya-burinskiy/utilapi/internal/app/middlewares"
)

// NewRouter
func NewRouter(h Handlers) chi.Router {
	router := chi.NewRouter()
	router.Use(
		middlewares.ResponseLogger,
		middlewares.RequestLogger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding"},
		}),
		middlewares.GzipCompress,
		middleware.AllowContentEncoding("gzip"),
	)

	router.Get("/whoami", h.WhoAmI)
	router.Route("/api", func(router chi.Router) {
		router.Get("/", h.Timestamp)
		router.Get("/hello", h.Hello)
		router.Get("/{date}", h.Timestamp)

		router.Post("/shorturl", h.CreateShortURL)
		router.Get("/shorturl/{id}", h.RedirectToOriginalURL)

		router.Post("/users", h.CreateUser)
		router.Get("/users", h.ListUsers)
		router.Get("/users/all", h.ListUsers)
		router.Post("/users/{id}/exercises", h.AddExercise)
		router.Get("/users/{id}/logs", h.GetLog)

		router.Post("/fileanalyse", h.AnalyseFile)
	})

	return router
}
