package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Sugatraj/password-generator/internal/middleware"
)

// RouterConfig holds what the HTTP API needs besides its handlers.
type RouterConfig struct {
	SessionSecret  string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires every route of the widget API. ctx bounds background work
// started by middleware.
func NewRouter(ctx context.Context, cfg RouterConfig, gen *GeneratorHandler, sess *SessionHandler, footer *FooterHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/footer", footer.HandleFooter)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", gen.HandleGenerate)
		r.Post("/api/v1/sessions", sess.HandleCreate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.SessionSecret))
		r.Get("/api/v1/session", sess.HandleGet)
		r.Patch("/api/v1/session", sess.HandleUpdate)
		r.Post("/api/v1/session/copy", sess.HandleCopy)
	})

	return r
}
