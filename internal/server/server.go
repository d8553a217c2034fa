package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/middleware"
)

const shutdownTimeout = 30 * time.Second

// Server is the dashboard HTTP server
type Server struct {
	app     *app.App
	limiter *middleware.RateLimiter
	http    *http.Server
}

// New builds the HTTP server for the configured host and port
func New(a *app.App) *Server {
	limiter := middleware.NewRateLimiter(a.Config.Security.RateLimitPerSecond, a.Config.Security.RateLimitBurst)

	return &Server{
		app:     a,
		limiter: limiter,
		http: &http.Server{
			Addr:           net.JoinHostPort(a.Config.Server.Host, a.Config.Server.Port),
			Handler:        NewRouter(a, limiter),
			ReadTimeout:    a.Config.Server.ReadTimeout,
			WriteTimeout:   a.Config.Server.WriteTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	if err := s.app.StartBackground(ctx); err != nil {
		return err
	}

	go s.limiter.RunCleanup(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.app.Logger.Info("Starting HTTP server", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.app.Logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.app.Logger.Info("Server exited gracefully")
	return nil
}
