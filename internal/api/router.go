package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nguyentantai21042004/recording-qc/internal/logger"
)

func NewRouter(h *Handler, log logger.Logger, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Form UI
	r.Get("/", h.Index)
	r.Post("/check", h.Check)

	// Scripted access
	r.Route("/api", func(r chi.Router) {
		r.Post("/qc", h.CheckJSON)
	})

	r.Get("/healthz", h.Health)

	return r
}
