package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/bookroster/internal/httpapi/handlers"
	"github.com/redhat-data-and-ai/bookroster/internal/httpapi/middleware"
	"github.com/redhat-data-and-ai/bookroster/pkg/config"
	"github.com/redhat-data-and-ai/bookroster/pkg/store"
)

const shutdownTimeout = 10 * time.Second

type APIServer struct {
	config *config.AppConfig
	router *gin.Engine
	server *http.Server
}

func NewAPIServer(cfg *config.AppConfig, dataStore *store.Store) *APIServer {
	if cfg.App.Environment == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(&cfg.APIServer.CORS))

	s := &APIServer{
		config: cfg,
		router: router,
	}
	s.setupRoutes(handlers.NewHandlers(cfg, dataStore))
	return s
}

func (s *APIServer) setupRoutes(h *handlers.Handlers) {
	s.router.GET("/healthz", h.Healthz)
	h.RegisterRoutes(s.router.Group("/io"))
}

// Handler exposes the router, mainly for tests
func (s *APIServer) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts the server down gracefully
func (s *APIServer) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.APIServer.Host, s.config.APIServer.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.server.Addr).Info("starting http API server")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start http API server: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("turning down http API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during http API server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http API server stopped: %w", err)
	}
	logrus.Info("http API server stopped")
	return nil
}
