package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leofalp/medcalc/internal/config"
	"github.com/leofalp/medcalc/providers/observability"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Run serves on the transport selected by cfg and blocks until ctx ends.
func (s *Server) Run(ctx context.Context, cfg config.Config) error {
	switch cfg.Transport {
	case config.TransportStdio, "":
		s.observer.Info(ctx, "mcp server starting",
			observability.String(observability.AttrTransport, config.TransportStdio),
			observability.Int(observability.AttrRegistrySize, s.dispatcher.Registry().Len()),
		)
		return s.Serve(ctx, &mcp.StdioTransport{})
	case config.TransportHTTP:
		ln, err := net.Listen("tcp", cfg.HTTPAddr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
		}
		return s.ServeHTTP(ctx, ln)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Handler returns the HTTP routes: the streamable MCP endpoint on /mcp,
// /healthz and, when configured, /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":     "ok",
		"operations": s.dispatcher.Registry().Len(),
	})
}

// ServeHTTP serves Handler on ln until ctx ends, then shuts down gracefully.
func (s *Server) ServeHTTP(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.observer.Info(ctx, "mcp server starting",
		observability.String(observability.AttrTransport, config.TransportHTTP),
		observability.String(observability.AttrHTTPAddr, ln.Addr().String()),
		observability.Int(observability.AttrRegistrySize, s.dispatcher.Registry().Len()),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.observer.Info(context.Background(), "mcp server shutting down",
			observability.String(observability.AttrTransport, config.TransportHTTP),
		)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}
