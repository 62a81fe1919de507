package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight requests get to finish once
// shutdown begins.
const shutdownTimeout = 10 * time.Second

// startHTTPServer serves the router until a termination signal arrives or
// ctx is canceled, then drains in-flight requests before returning. A nil
// return means a clean shutdown; all state is in-memory, so nothing else
// needs flushing.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	serveCtx, stopServing := context.WithCancel(ctx)
	defer stopServing()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		app.logger.Info("server listening", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("server stopped unexpectedly", "error", err)
			stopServing()
		}
	}()

	select {
	case sig := <-sigCh:
		app.logger.Info("shutdown signal received", "signal", sig.String())
	case <-serveCtx.Done():
		app.logger.Info("shutting down")
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelDrain()

	if err := server.Shutdown(drainCtx); err != nil {
		app.logger.Error("shutdown did not complete cleanly", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("server stopped")
	return nil
}
