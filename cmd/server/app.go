package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claydesk/flowtest-api/internal/config"
	"github.com/claydesk/flowtest-api/internal/service/auth"
	"github.com/claydesk/flowtest-api/internal/store"
	"github.com/claydesk/flowtest-api/internal/store/memstore"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction). All state is
	// in-memory: a restart clears every task and user.
	taskStore store.TaskStore
	userStore store.UserStore

	// Service interfaces
	tokenService auth.TokenService
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.taskStore = memstore.NewTaskStore()
	app.userStore = memstore.NewUserStore()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
