package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withCORS())
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/api/version", h.getServerVersion)

		r.Get("/novels", h.listNovels)
		r.Get("/novels/{novelID}", h.getNovel)
		r.Get("/novels/{novelID}/chapters", h.listChapters)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)

		r.Post("/novels", h.createNovel)
		r.Put("/novels/{novelID}", h.updateNovel)
		r.Delete("/novels/{novelID}", h.deleteNovel)
		r.Post("/novels/{novelID}/chapters", h.createChapter)

		r.Post("/novels/{novelID}/status", h.setStatus)
		r.Get("/novels/{novelID}/status", h.getStatus)
		r.Get("/user/novels/status", h.listStatuses)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS allows credentialed requests from the configured origins with any
// method and header.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	}).Handler
}
