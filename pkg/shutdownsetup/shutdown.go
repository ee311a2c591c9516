package shutdownsetup

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mesa-pos/pkg/logger"
)

// DefaultTimeout bounds how long in-flight requests get to finish.
const DefaultTimeout = 10 * time.Second

// Run serves until the server fails or SIGINT/SIGTERM arrives, then shuts
// the server down gracefully.
func Run(server *http.Server, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunContext(ctx, server, log, DefaultTimeout)
}

// RunContext is Run with an explicit stop context and shutdown timeout.
func RunContext(ctx context.Context, server *http.Server, log *logger.Logger, timeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error("Server error", "error", err)
		return err
	case <-ctx.Done():
		log.Info("Shutdown signal received, draining connections", "timeout", timeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed, forcing close", "error", err)
		_ = server.Close()
		return err
	}

	log.Info("Server stopped")
	return nil
}
