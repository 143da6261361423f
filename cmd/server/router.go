package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ucsb-cs156/campus-records-api/internal/api"
	apiMiddleware "github.com/ucsb-cs156/campus-records-api/internal/api/middleware"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.roleResolver)

	recommendationRequestHandler := api.NewCRUDHandler[domain.RecommendationRequest](
		app.recommendationRequests,
		api.ParseRecommendationRequest,
		domain.RecommendationRequestEntity,
		app.eventEmitter,
		app.logger,
	)
	menuItemReviewHandler := api.NewCRUDHandler[domain.MenuItemReview](
		app.menuItemReviews,
		api.ParseMenuItemReview,
		domain.MenuItemReviewEntity,
		app.eventEmitter,
		app.logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Mount("/recommendationrequests",
			recommendationRequestHandler.Routes(domain.RoleUser, domain.RoleAdmin))
		r.Mount("/ucsbmenuitemreview",
			menuItemReviewHandler.Routes(domain.RoleUser, domain.RoleAdmin))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", app.metrics.Handler())

	return r
}
