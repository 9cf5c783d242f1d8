// Package main provides the entry point for the quiz service HTTP server.
// It loads the question store, wires the services and API routes, and runs
// until interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quizservice/internal/config"
	"quizservice/internal/handlers"
	"quizservice/internal/observability"
	"quizservice/internal/parser"
	"quizservice/internal/services"
	"quizservice/internal/store"
	contextutils "quizservice/internal/utils"

	"github.com/gin-gonic/gin"
)

// Application bundles the router so startup can be exercised in tests.
type Application struct {
	router *gin.Engine
}

// NewApplication loads the store and wires services into a router.
func NewApplication(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Application, error) {
	questionStore := store.New(ctx, cfg.Store.FilePath, logger)
	quizService := services.NewQuizService(questionStore, logger)

	provider, err := services.NewGenerationProvider(ctx, &cfg.AI)
	if err != nil {
		return nil, contextutils.WrapError(err, "failed to create generation provider")
	}
	if provider == nil {
		logger.Warn(ctx, "No AI backend configured, question generation disabled", nil)
	}
	generationService := services.NewGenerationService(provider, parser.NewParser(logger), logger)

	router := handlers.NewRouter(cfg, quizService, generationService, logger)

	return &Application{router: router}, nil
}

// Run starts the HTTP server and blocks until it fails or ctx is cancelled.
func (a *Application) Run(ctx context.Context, port string) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := a.router.Run(":" + port); err != nil {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		return contextutils.WrapError(err, "server failed")
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	tp, logger, err := observability.SetupObservability(&cfg.OpenTelemetry, "quiz-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize observability: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer shutdownCancel()

		if shutdownable, ok := tp.(interface{ Shutdown(context.Context) error }); ok {
			if err := shutdownable.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "Error shutting down tracer provider", map[string]interface{}{"error": err.Error()})
			}
		}
	}()

	logger.Info(ctx, "Starting quiz service", map[string]interface{}{
		"port":      cfg.Server.Port,
		"logLevel":  cfg.Server.LogLevel,
		"storeFile": cfg.Store.FilePath,
	})

	app, err := NewApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create application", err, nil)
		os.Exit(1)
	}

	appErr := make(chan error, 1)
	go func() {
		if err := app.Run(ctx, cfg.Server.Port); err != nil {
			appErr <- err
		}
	}()

	select {
	case <-shutdownCh:
		logger.Info(ctx, "Received shutdown signal, shutting down gracefully", nil)
	case err := <-appErr:
		logger.Error(ctx, "Application failed", err, nil)
		os.Exit(1)
	}

	if err := logger.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush logs: %v\n", err)
	}
}
