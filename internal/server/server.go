package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/nguyentantai21042004/tubescribe/internal/config"
	"github.com/nguyentantai21042004/tubescribe/internal/export"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/internal/processor"
)

type Server struct {
	cfg     config.ServerConfig
	logger  logger.Logger
	handler http.Handler

	// inflight also covers hijacked websocket handlers, which http.Server.Shutdown does not wait for.
	inflight sync.WaitGroup
}

func New(cfg config.ServerConfig, proc processor.Processor, exp export.Exporter, log logger.Logger) *Server {
	h := NewHandler(proc, exp, log, cfg.AllowedOrigins)
	return &Server{
		cfg:     cfg,
		logger:  log,
		handler: NewRouter(h),
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is done, then shuts down gracefully within cfg.ShutdownTimeout
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.serve(ctx, ln)
}

// serve returns only after every request handler has finished, so their working files are gone.
// Handlers still running when the shutdown timeout expires have their context canceled.
func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	baseCtx, cancelRequests := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelRequests()

	// No WriteTimeout: a transcription response is only written after every stage has finished.
	srv := &http.Server{
		Handler:           s.track(s.handler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Server ready at http://%s", ln.Addr())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		cancelRequests()
		s.inflight.Wait()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down HTTP server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)

	drained := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-shutdownCtx.Done():
		s.logger.Warn(context.Background(), "Canceling requests still running after %s", s.cfg.ShutdownTimeout)
		cancelRequests()
		<-drained
	}

	if shutdownErr != nil {
		srv.Close()
		return fmt.Errorf("failed to gracefully shutdown server: %w", shutdownErr)
	}
	s.logger.Info(context.Background(), "Server stopped cleanly")
	return nil
}

func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.inflight.Add(1)
		defer s.inflight.Done()
		next.ServeHTTP(w, r)
	})
}
