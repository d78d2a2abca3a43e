package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/middleware"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// SetupRoutes configures the routes for the application. System routes are
// always present; the data routes under /api exist only when the database is
// configured, falling back to a 503 responder otherwise.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// System routes
	r.Get("/", s.Handlers.SystemHandler.Home)
	r.Get("/version", s.Handlers.SystemHandler.Version)
	r.Get(constants.HealthPath, s.Handlers.SystemHandler.Health)

	// Data routes
	r.Route(constants.APIBasePath, func(r chi.Router) {
		if s.Handlers.UserHandler == nil {
			r.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
				utils.ServiceUnavailable(w, constants.MsgDatabaseNotConfigured)
			})
			return
		}

		r.Route("/blacklisted-users", func(r chi.Router) {
			r.Get("/", s.Handlers.UserHandler.List)
			r.Post("/", s.Handlers.UserHandler.Create)
			r.Get("/{id}", s.Handlers.UserHandler.Get)
			r.Delete("/{id}", s.Handlers.UserHandler.Delete)
		})

		r.Route("/blacklisted-groups", func(r chi.Router) {
			r.Get("/", s.Handlers.GroupHandler.List)
			r.Post("/", s.Handlers.GroupHandler.Create)
			r.Get("/{id}", s.Handlers.GroupHandler.Get)
			r.Delete("/{id}", s.Handlers.GroupHandler.Delete)
		})

		r.Route("/realms-blacklist", func(r chi.Router) {
			r.Get("/", s.Handlers.RealmsHandler.List)
			r.Post("/", s.Handlers.RealmsHandler.Create)
			r.Get("/{id}", s.Handlers.RealmsHandler.Get)
			r.Delete("/{id}", s.Handlers.RealmsHandler.Delete)
		})

		r.Route("/command-blacklist", func(r chi.Router) {
			r.Get("/", s.Handlers.CommandHandler.List)
			r.Post("/", s.Handlers.CommandHandler.Create)
			r.Get("/{id}", s.Handlers.CommandHandler.Get)
			r.Delete("/{id}", s.Handlers.CommandHandler.Delete)
		})

		r.Route("/keywords", func(r chi.Router) {
			// Static segments must precede the {tier} wildcard
			r.Get("/all", s.Handlers.KeywordHandler.ListAll)
			r.Post("/check", s.Handlers.KeywordHandler.Check)
			r.Get("/{tier}", s.Handlers.KeywordHandler.ListTier)
			r.Post("/{tier}", s.Handlers.KeywordHandler.Add)
			r.Delete("/{tier}/{keyword}", s.Handlers.KeywordHandler.Remove)
		})

		r.Get("/search/user/{username}", s.Handlers.SearchHandler.SearchUser)
		r.Get("/stats", s.Handlers.StatsHandler.GetStats)
	})

	s.router = r
}
