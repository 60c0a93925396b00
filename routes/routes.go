package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/docs" // swagger registration
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/handlers"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/middleware"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

// SetupRoutes wires the HTTP surface: a public index, swagger docs, and the
// bearer-protected /api group.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	authService services.AuthService,
	userHandler *handlers.UserHandler,
	eventHandler *handlers.EventHandler,
	teamHandler *handlers.TeamHandler,
	soloHandler *handlers.SoloHandler,
	joinHandler *handlers.JoinHandler,
	requestHandler *handlers.RequestHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	router.Get("/", handlers.Index)
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(authService))

		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.Get)

		r.Post("/events", eventHandler.Create)
		r.Get("/events", eventHandler.List)
		r.Delete("/events", eventHandler.Delete)

		r.Post("/solos", soloHandler.Create)
		r.Get("/solos", soloHandler.ListUsers)

		r.Post("/teams", teamHandler.Create)
		r.Get("/teams", teamHandler.Get)
		r.Get("/teams/event", teamHandler.ListByEvent)

		r.Post("/joins", joinHandler.Create)

		r.Post("/requests", requestHandler.Create)
		r.Get("/requests", requestHandler.List)
	})
}
