package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/baobabprince/HebrewFamilyTree/internal/config"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
)

// Server wraps the HTTP server around the router.
type Server struct {
	srv    *http.Server
	logger logging.Logger
	port   int
}

// NewServer builds a Server from the router config and server tunables.
func NewServer(serverCfg config.ServerConfig, routerCfg RouterConfig) *Server {
	routerCfg.Mode = serverCfg.Mode
	router := NewRouter(routerCfg)

	logger := routerCfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Server{
		logger: logger,
		port:   serverCfg.Port,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", serverCfg.Port),
			Handler:      router,
			ReadTimeout:  serverCfg.ReadTimeout,
			WriteTimeout: serverCfg.WriteTimeout,
		},
	}
}

// Start blocks serving requests until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.Int("port", s.port))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.srv.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
