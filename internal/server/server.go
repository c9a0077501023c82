package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/WeberBSG/ParTea/internal/app/domain/auth"
	"github.com/WeberBSG/ParTea/internal/app/domain/party"
	"github.com/WeberBSG/ParTea/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router http.Handler

	authService *auth.ServiceImpl
	feedService *party.FeedServiceImpl
}

// New creates a new Server instance with all dependencies. The Gemini
// credential is validated here, at construction time, so a misconfigured
// deployment fails on startup instead of on the first search.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	searchService, err := party.NewSearchService(context.Background(), cfg.Gemini, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup search service: %w", err)
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		authService: auth.NewService(cfg, logger),
		feedService: party.NewFeedService(searchService, logger),
	}, nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// AuthService returns the mock session service
func (s *Server) AuthService() *auth.ServiceImpl {
	return s.authService
}

// FeedService returns the feed service
func (s *Server) FeedService() *party.FeedServiceImpl {
	return s.feedService
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}
