package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// GracefulShutdown waits for SIGINT or SIGTERM, drains srv and then runs each
// hook with the remaining shutdown budget. done receives once everything has
// stopped.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, done chan<- bool, hooks ...func(context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	stop() // Allow Ctrl+C to force shutdown

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	for _, hook := range hooks {
		if err := hook(shutdownCtx); err != nil {
			logger.Error("Shutdown hook failed", zap.Error(err))
		}
	}

	logger.Info("Server exiting")
	done <- true
}
