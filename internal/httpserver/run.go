package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Run serves until ctx is cancelled, then stops accepting connections, drains
// in-flight requests and waits for pending chat persistence jobs.
func (srv HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpserver: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	srv.l.Infof(shutdownCtx, "Shutting down HTTP server (timeout %s)", srv.shutdownTimeout)
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "httpserver.Shutdown: %v", err)
	}

	done := make(chan struct{})
	go func() {
		srv.chatUC.Close()
		close(done)
	}()
	select {
	case <-done:
		srv.l.Info(shutdownCtx, "Pending persistence jobs drained")
	case <-shutdownCtx.Done():
		srv.l.Warn(shutdownCtx, "Shutdown timeout reached with persistence jobs still running")
	}

	return nil
}
