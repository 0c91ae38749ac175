package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	bookhandlers "github.com/shelfstack/bookstore/internal/books/handlers"
	"github.com/shelfstack/bookstore/internal/config"
	"github.com/shelfstack/bookstore/internal/logger"
	commonhandlers "github.com/shelfstack/bookstore/internal/server/handlers"
	"github.com/shelfstack/bookstore/internal/server/middleware"
	"github.com/shelfstack/bookstore/internal/store"
	"github.com/shelfstack/bookstore/internal/version"
)

type Server struct {
	pool   *pgxpool.Pool
	store  store.BookStore
	config *config.ServerEnvironment
	logger *slog.Logger
	router *chi.Mux
}

func NewServer(
	pool *pgxpool.Pool,
	bookStore store.BookStore,
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) *Server {
	server := &Server{
		pool:   pool,
		store:  bookStore,
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(60 * time.Second))

	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxRequestBodySize))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))

	if len(s.config.AllowedOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

func (s *Server) registerRoutes() {
	s.router.Route("/books", func(r chi.Router) {
		r.Post("/", bookhandlers.HandleCreateBook(s.store))
		r.Get("/", bookhandlers.HandleListBooks(s.store))
		r.Get("/{isbn}", bookhandlers.HandleGetBook(s.store))
		r.Put("/{isbn}", bookhandlers.HandleUpdateBook(s.store))
		r.Delete("/{isbn}", bookhandlers.HandleDeleteBook(s.store))
	})

	s.router.Get("/health/live", commonhandlers.HandleHealth)
	s.router.Get("/health/ready", commonhandlers.HandleReadiness(s.pool))

	v := version.Get()
	s.router.Get("/version", commonhandlers.HandleVersion(v.Version, v.BuildDate))
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

func (s *Server) DatabaseShutdown() {
	if s.pool != nil {
		s.pool.Close()
		s.logger.Info("database connection closed")
	}
}
