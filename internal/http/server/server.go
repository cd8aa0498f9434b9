package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type HTTPServer struct {
	logs   *zap.SugaredLogger
	server *http.Server
	cancel context.CancelFunc
}

// NewHTTP builds a server listening on port. Request contexts are cancelled
// on Shutdown so long-lived event streams let go of their connections.
func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	ctx, cancel := context.WithCancel(context.Background())
	return &HTTPServer{
		logs:   logger,
		cancel: cancel,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
		},
	}
}

func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		s.logs.Infow("server started", "addr", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()
	return errChan
}

func (s *HTTPServer) Shutdown() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.logs.Infow("server stopped", "addr", s.server.Addr)
	return nil
}
