package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Run starts the ingest pipeline and the HTTP server, then blocks until a
// shutdown signal arrives:
//  1. Map HTTP handlers and routes
//  2. Start the ingest engine
//  3. Start the HTTP server
//  4. Wait for shutdown signal, then drain the pipeline and stop serving
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	srv.engine.Start()
	srv.l.Info(ctx, "Ingest engine started")

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.l.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.l.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.l.Info(ctx, <-ch)
	srv.l.Info(ctx, "Stopping monitoring service...")

	// Stop accepting requests first, then drain the pipeline.
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
	if err := srv.engine.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Ingest engine shutdown error: %v", err)
	}

	return nil
}
