// Package server provides the HTTP server of the blacklist API. It wires the
// database, repositories, services and handlers together and manages the
// server lifecycle including graceful shutdown.
//
// The server is built to run without a database: when no connection settings
// are present or the database is unreachable, it still starts, serves the
// system routes, and reports the condition on /health.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/scamguard/blacklist-api/internal/config"
	"github.com/scamguard/blacklist-api/internal/constants"
	"github.com/scamguard/blacklist-api/internal/database"
	"github.com/scamguard/blacklist-api/internal/handlers"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/repository"
	"github.com/scamguard/blacklist-api/internal/service"
	"github.com/scamguard/blacklist-api/migrations"
	"github.com/scamguard/blacklist-api/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// UserHandler serves the global user blacklist routes
	UserHandler *handlers.ListHandler[models.BlacklistedUser]

	// GroupHandler serves the group blacklist routes
	GroupHandler *handlers.ListHandler[models.BlacklistedGroup]

	// RealmsHandler serves the realms blacklist routes
	RealmsHandler *handlers.ListHandler[models.BlacklistEntry]

	// CommandHandler serves the command blacklist routes
	CommandHandler *handlers.ListHandler[models.BlacklistEntry]

	// KeywordHandler serves the flagged keyword routes
	KeywordHandler *handlers.KeywordHandler

	// SearchHandler serves the cross-entity username search route
	SearchHandler *handlers.SearchHandler

	// StatsHandler serves the aggregate statistics route
	StatsHandler *handlers.StatsHandler

	// SystemHandler serves the index, version and health routes
	SystemHandler *handlers.SystemHandler
}

// repositories groups the data stores used by the server.
type repositories struct {
	userRepo    repository.BlacklistedUserStore
	groupRepo   repository.BlacklistedGroupStore
	realmsRepo  repository.BlacklistEntryStore
	commandRepo repository.BlacklistEntryStore
	keywordRepo repository.KeywordRepository
}

// services groups the business services used by the server.
type services struct {
	keywordService *service.KeywordService
	searchService  *service.SearchService
	statsService   *service.StatsService
}

// Server represents the blacklist API server.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access; nil when the database is not configured
	Db *database.Pool

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	repos *repositories
	svcs  *services

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows a fixed order: database, repositories, services,
// handlers, routes. A missing database skips everything but the system
// handlers; the data routes then answer 503 until the database is configured.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if s.Db != nil {
		s.setupRepositories()
		s.setupServices()
	}
	s.setupHandlers()

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase connects to the database and brings the schema up to date.
// An unconfigured database is not an error; a configured but unreachable one
// logs a warning and leaves schema setup for the next start.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			log.Warn().Msg("No database configured, starting without data routes")
			return nil
		}
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Failed to run database migrations, continuing degraded")
		return nil
	}

	seeder := scripts.NewSeeder(db)
	if err := seeder.SeedDatabase(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Failed to seed database")
	}

	return nil
}

// setupRepositories initializes all data stores.
func (s *Server) setupRepositories() {
	s.repos = &repositories{
		userRepo:    repository.NewBlacklistedUserRepository(s.Db),
		groupRepo:   repository.NewBlacklistedGroupRepository(s.Db),
		realmsRepo:  repository.NewRealmsBlacklistRepository(s.Db),
		commandRepo: repository.NewCommandBlacklistRepository(s.Db),
		keywordRepo: repository.NewKeywordRepository(s.Db),
	}
}

// setupServices initializes all business services.
func (s *Server) setupServices() {
	s.svcs = &services{
		keywordService: service.NewKeywordService(s.repos.keywordRepo),
		searchService: service.NewSearchService(
			s.repos.userRepo,
			s.repos.realmsRepo,
			s.repos.commandRepo,
		),
		statsService: service.NewStatsService(
			s.repos.userRepo,
			s.repos.groupRepo,
			s.repos.realmsRepo,
			s.repos.commandRepo,
			s.repos.keywordRepo,
		),
	}
}

// setupHandlers initializes all HTTP request handlers. The system handler is
// always created; data handlers exist only when the database does.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		SystemHandler: handlers.NewSystemHandler(s.Db, s.Config.App.Name, s.Config.App.Version),
	}

	if s.repos == nil {
		return
	}

	s.Handlers.UserHandler = handlers.NewBlacklistedUserHandler(s.repos.userRepo)
	s.Handlers.GroupHandler = handlers.NewBlacklistedGroupHandler(s.repos.groupRepo)
	s.Handlers.RealmsHandler = handlers.NewRealmsBlacklistHandler(s.repos.realmsRepo)
	s.Handlers.CommandHandler = handlers.NewCommandBlacklistHandler(s.repos.commandRepo)
	s.Handlers.KeywordHandler = handlers.NewKeywordHandler(s.svcs.keywordService)
	s.Handlers.SearchHandler = handlers.NewSearchHandler(s.svcs.searchService)
	s.Handlers.StatsHandler = handlers.NewStatsHandler(s.svcs.statsService)
}

// Start starts the HTTP server and blocks until an error occurs or a
// shutdown signal (SIGINT, SIGTERM) is received.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	if s.Db != nil {
		s.Db.Close()
	}

	return nil
}
