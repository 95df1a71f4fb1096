package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/filteredimage", h.filteredImage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
