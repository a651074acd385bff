// Package rest wires the HTTP surface: one chi router shared by the
// traditional server and the edge function.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"colorboard/infrastructure/di"
	"colorboard/interfaces/http/rest/handlers"
	"colorboard/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{container: container}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	c := rt.container
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(c.Logger))

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Client-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	router.Route("/api/v1", func(r chi.Router) {
		// Board endpoints
		r.Route("/board", func(r chi.Router) {
			boardHandler := handlers.NewBoardHandler(c.CommandBus, c.QueryBus, c.Sessions, c.Logger)
			r.Get("/", boardHandler.GetBoard)
			r.Put("/", boardHandler.RenameBoard)
			r.Post("/undo", boardHandler.Undo)
			r.Post("/redo", boardHandler.Redo)
			r.Post("/reset", boardHandler.Reset)
			r.Post("/selection", boardHandler.UpdateSelection)
			r.Get("/export.png", boardHandler.Export)

			// Item endpoints
			itemHandler := handlers.NewItemHandler(c.CommandBus, c.QueryBus, c.Logger)
			r.Route("/items", func(r chi.Router) {
				r.Post("/", itemHandler.CreateItem)
				r.Post("/align", itemHandler.AlignItems)
				r.Post("/group", itemHandler.GroupItems)
				r.Post("/ungroup", itemHandler.UngroupItems)
				r.Patch("/{itemID}", itemHandler.UpdateItem)
				r.Delete("/{itemID}", itemHandler.DeleteItem)
				r.Post("/{itemID}/move", itemHandler.MoveItem)
				r.Post("/{itemID}/resize", itemHandler.ResizeItem)
				r.Post("/{itemID}/rotate", itemHandler.RotateItem)
				r.Post("/{itemID}/front", itemHandler.BringToFront)
			})

			r.Post("/groups/{groupID}/move", itemHandler.MoveGroup)
		})

		// Completion proxy endpoints, rate limited per client IP
		r.Route("/ai", func(r chi.Router) {
			r.Use(middleware.RateLimit(c.Limiter, c.Logger))
			aiHandler := handlers.NewAIHandler(c.Palette, c.Season, c.Logger)
			r.Post("/generate-palette", aiHandler.GeneratePalette)
			r.Post("/analyze-season", aiHandler.AnalyzeSeason)
		})

		// Asset endpoints
		assetHandler := handlers.NewAssetHandler(c.Searcher, c.Logger)
		r.Post("/uploads", assetHandler.Upload)
		r.Get("/images/search", assetHandler.SearchImages)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
