// Package server wires the HTTP API: routing, middleware and handlers
// around the calculation engine and the analysis store.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/calc"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/config"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/server/middleware"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

// Storage persists completed analyses.
type Storage interface {
	Save(ctx context.Context, a *model.Analysis) error
	Get(ctx context.Context, id uuid.UUID) (*model.Analysis, error)
	List(ctx context.Context) ([]*model.Analysis, error)
	Ping(ctx context.Context) error
}

// Server handles HTTP requests for the analysis API.
type Server struct {
	storage Storage
	engine  *calc.Engine
	config  *config.ServerConfig
}

// NewServer creates a server around the given storage and configuration.
func NewServer(storage Storage, cfg *config.ServerConfig) *Server {
	return &Server{
		storage: storage,
		engine:  calc.NewEngine(cfg.Thresholds, cfg.Logger),
		config:  cfg,
	}
}

// Router builds the chi router with the full middleware chain.
func (srv *Server) Router() chi.Router {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.config.Logger))
	router.Use(middleware.TrustedCIDR(srv.config.TrustedSubnet))
	router.Use(middleware.VerifyHashMiddleware(srv.config.Key))
	router.Use(middleware.RateLimitMiddleware(srv.config.RateLimit))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware)

	router.Get("/ping", srv.PingHandler)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/packages", srv.ListPackagesHandler)
		r.Get("/packages/{propertyType}", srv.PackagesByTypeHandler)
		r.Post("/analyze", srv.AnalyzeHandler)
		r.Get("/analysis", srv.ListAnalysesHandler)
		r.Get("/analysis/{id}", srv.GetAnalysisHandler)
		r.Get("/analysis/{id}/export", srv.ExportAnalysisHandler)
	})
	return router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    srv.config.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
