// Package siteconfig holds the site configuration of the dev blog and the
// slash conventions applied to it when it is loaded.
//
// Site returns the finalized record. Downstream tooling in other processes
// can read the same record over HTTP through Server.
package siteconfig

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

// Server exposes a finalized SiteConfig read-only over HTTP. Routes live
// under the configured path prefix.
type Server struct {
	Echo *echo.Echo

	config SiteConfig
	logger *slog.Logger
}

// Option configures additional Server behavior.
type Option func(*Server)

// WithLogger sets the logger used for request and error logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a Server for cfg. The config is copied, so later changes
// to the caller's value are not visible to clients.
func NewServer(cfg SiteConfig, opts ...Option) *Server {
	s := &Server{
		Echo:   echo.New(),
		config: cfg.Clone(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Config returns a copy of the configuration being served.
func (s *Server) Config() SiteConfig {
	return s.config.Clone()
}

func (s *Server) setupRoutes() {
	e := s.Echo

	e.GET("/healthz", handleHealth)

	g := e.Group(strings.TrimSuffix(s.config.PathPrefix, "/"))
	g.GET("/site.json", s.handleSite)
	g.GET("/site/links.json", s.handleLinks)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) handleSite(c echo.Context) error {
	return c.JSON(http.StatusOK, s.config)
}

func (s *Server) handleLinks(c echo.Context) error {
	links := s.config.UserLinks
	if links == nil {
		links = []UserLink{}
	}
	return c.JSON(http.StatusOK, links)
}

// Start listens on addr and serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("serving site configuration",
		slog.String("addr", addr),
		slog.String("base_url", s.config.BaseURL()),
	)
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
