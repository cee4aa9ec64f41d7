// Package httpapi exposes the contact book over a JSON REST API.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/contactbook/internal/auth"
	"github.com/mmynk/contactbook/internal/middleware"
	"github.com/mmynk/contactbook/internal/service"
)

// Options wires the router to its services.
type Options struct {
	Contacts   *service.ContactService
	Categories *service.CategoryService
	Auth       *service.AuthService
	JWT        *auth.JWTManager

	// Registry receives the HTTP collectors and backs /metrics.
	// A private registry is created when nil.
	Registry *prometheus.Registry

	CORSOrigins []string

	// StaticDir, when set, serves the front-end bundle for non-API paths.
	StaticDir string
}

type server struct {
	contacts   *service.ContactService
	categories *service.CategoryService
	auth       *service.AuthService
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(opts Options) http.Handler {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(reg)

	s := &server{
		contacts:   opts.Contacts,
		categories: opts.Categories,
		auth:       opts.Auth,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Handler)
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/api", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(w, http.StatusNotFound, "route not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
		})

		r.Post("/auth/login", s.login)
		r.Get("/contacts", s.listContacts)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(opts.JWT))

			r.Get("/auth/me", s.me)

			r.Get("/categories", s.listCategories)
			r.Get("/categories/{id}/subcategories", s.listSubcategories)

			r.Post("/contacts", s.createContact)
			r.Get("/contacts/{id}", s.getContact)
			r.Put("/contacts/{id}", s.updateContact)
			r.Delete("/contacts/{id}", s.deleteContact)
		})
	})

	if opts.StaticDir != "" {
		r.NotFound(staticHandler(opts.StaticDir))
	}

	return r
}
