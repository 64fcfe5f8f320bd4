package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/mergington/internal/auth"
)

// NewRouter wires all endpoints. Mutating roster endpoints and the
// session introspection endpoints sit behind the auth middleware;
// everything else is public.
func NewRouter(h *Handler, authMW auth.Middleware, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.redirectToUI)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Post("/auth/login", h.login)
	r.Get("/activities", h.listActivities)
	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authMW.Wrap)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)
		r.Post("/activities/{name}/signup", h.signup)
		r.Delete("/activities/{name}/unregister", h.unregister)
	})

	return r
}
