package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pageforge/pageforge/internal/logfields"
	"github.com/pageforge/pageforge/internal/metrics"
)

// PreviewServer serves the generated artifacts plus health and metrics
// endpoints.
type PreviewServer struct {
	addr     string
	mux      *http.ServeMux
	server   *http.Server
	listener net.Listener
}

// NewPreviewServer builds the server serving outputDir at the root, health
// state at /healthz and Prometheus metrics at /metrics.
func NewPreviewServer(addr, outputDir string, status *runStatus, registry *prometheus.Registry) *PreviewServer {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(outputDir)))
	mux.HandleFunc("/healthz", healthHandler(status))
	mux.Handle("/metrics", metrics.HTTPHandler(registry))

	return &PreviewServer{
		addr: addr,
		mux:  mux,
		server: &http.Server{
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Handler exposes the route table.
func (ps *PreviewServer) Handler() http.Handler { return ps.mux }

// Start binds the listen address and serves in the background.
func (ps *PreviewServer) Start() error {
	ln, err := net.Listen("tcp", ps.addr)
	if err != nil {
		return fmt.Errorf("bind preview address %s: %w", ps.addr, err)
	}
	ps.listener = ln

	go func() {
		if err := ps.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Preview server error", logfields.Error(err))
		}
	}()

	slog.Info("Preview server listening", slog.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, valid after Start.
func (ps *PreviewServer) Addr() string {
	if ps.listener == nil {
		return ps.addr
	}
	return ps.listener.Addr().String()
}

// Stop gracefully shuts the server down.
func (ps *PreviewServer) Stop(ctx context.Context) error {
	return ps.server.Shutdown(ctx)
}

// healthHandler reports the most recent generation outcome. A daemon that
// has never generated successfully reports failing with a 503 so orchestrators
// hold traffic.
func healthHandler(status *runStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastErr, lastRun, runs, hasGood := status.snapshot()

		state := "ok"
		code := http.StatusOK
		switch {
		case lastErr != nil && hasGood:
			state = "degraded"
		case lastErr != nil || !hasGood:
			state = "failing"
			code = http.StatusServiceUnavailable
		}

		resp := map[string]any{
			"status": state,
			"runs":   runs,
		}
		if !lastRun.IsZero() {
			resp["lastRun"] = lastRun.UTC().Format(time.RFC3339)
		}
		if lastErr != nil {
			resp["lastError"] = lastErr.Error()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("Failed to write health response", logfields.Error(err))
		}
	}
}
