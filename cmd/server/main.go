// Package main implements the entry point for the FlowTest API server,
// a small task and user management service guarded by bearer tokens.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/claydesk/flowtest-api/internal/config"
	"github.com/claydesk/flowtest-api/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the application
// dependencies, and runs the HTTP server until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment)

	if cfg.Auth.UsingDefaultSecret() {
		appLogger.Warn("using the default signing secret; set FLOWTEST_AUTH_JWT_SECRET in any non-demo deployment")
	}

	return newApplication(cfg, appLogger)
}
