package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"icongallery/internal/handlers"
	"icongallery/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	IconService service.IconService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	iconsHandler := handlers.NewIconsHandler(deps.IconService)
	reloadHandler := handlers.NewReloadHandler(deps.IconService)
	statusHandler := handlers.NewStatusHandler(deps.IconService)
	healthHandler := handlers.NewHealthHandler(deps.IconService)
	galleryHandler := handlers.NewGalleryHandler(deps.IconService)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/icons", iconsHandler.List)
		r.Get("/icons/{key}", iconsHandler.Get)
		r.Get("/icons/{key}/download", iconsHandler.Download)
		r.Method(http.MethodPost, "/reload", reloadHandler)
		r.Get("/status", statusHandler.Status)
		r.Get("/loads", statusHandler.History)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Gallery page at root
	r.Method(http.MethodGet, "/", galleryHandler)

	return r
}
