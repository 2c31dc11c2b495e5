package api

import (
	"net/http"

	"github.com/agarza/hoopstats/internal/api/handlers"
	"github.com/agarza/hoopstats/internal/api/middleware"
	"github.com/agarza/hoopstats/internal/repository"
	"github.com/agarza/hoopstats/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, repos *repository.Repositories, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, log)
	usersHandler := handlers.NewUsersHandler(repos.User, log)
	sessionsHandler := handlers.NewSessionsHandler(services.Session, log)
	statsHandler := handlers.NewStatsHandler(services.Stats, log)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth, log))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// User listing (public)
		r.Get("/users", usersHandler.List)

		// Session routes: reads are public, writes require auth
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionsHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth, log))
				r.Post("/", sessionsHandler.Create)
				r.Put("/{id}", sessionsHandler.Update)
				r.Delete("/{id}", sessionsHandler.Delete)
			})
		})

		// Stats routes (public)
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", statsHandler.Get)
			r.Get("/compare", statsHandler.Compare)
		})
	})

	return r
}
