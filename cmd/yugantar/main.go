// Yugantar server — converts natural-language prompts into animated canvas
// visualizations. Serves the web UI, the generation API and the WebSocket
// event stream.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/c-varun14/Yugantar/pkg/api"
	"github.com/c-varun14/Yugantar/pkg/compiler"
	"github.com/c-varun14/Yugantar/pkg/config"
	"github.com/c-varun14/Yugantar/pkg/database"
	"github.com/c-varun14/Yugantar/pkg/events"
	"github.com/c-varun14/Yugantar/pkg/history"
	"github.com/c-varun14/Yugantar/pkg/llm"
	"github.com/c-varun14/Yugantar/pkg/prompt"
	"github.com/c-varun14/Yugantar/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", "./yugantar.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Yugantar", "http_port", httpPort, "config", *configPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey() == "" {
		slog.Warn("Generation credential is not set; requests will fail until it is provided",
			"env", cfg.LLM.APIKeyEnv)
	}

	// 2. Database. Optional: without it, prompt logs are disabled but
	// generation still works.
	var dbClient *database.Client
	var promptLogService *services.PromptLogService
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err = database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Warn("Database unavailable, prompt log persistence disabled", "error", err)
		dbClient = nil
	} else {
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		promptLogService = services.NewPromptLogService(dbClient.Client)
		slog.Info("Connected to PostgreSQL database")
	}

	// 3. Generation stack
	llmOpts := []llm.GeminiOption{llm.WithKeyFunc(cfg.APIKey)}
	if cfg.LLM.BaseURL != "" {
		llmOpts = append(llmOpts, llm.WithBaseURL(cfg.LLM.BaseURL))
	}
	llmClient := llm.NewGeminiClient("", cfg.LLM.InstructionModel, llmOpts...)
	promptBuilder := prompt.NewBuilder()
	htmlCompiler := compiler.New(llmClient, promptBuilder, cfg.LLM.CompilerModel)

	// 4. Streaming infrastructure
	connManager := events.NewConnectionManager(10 * time.Second)
	publisher := events.NewEventPublisher(connManager)

	// 5. Domain services
	historyStore := history.NewStore()
	var recorder services.PromptLogRecorder
	if promptLogService != nil {
		recorder = promptLogService
	}
	generationService := services.NewGenerationService(
		cfg, llmClient, htmlCompiler, promptBuilder, publisher, recorder, historyStore)
	slog.Info("Services initialized")

	// 6. HTTP server
	httpServer := api.NewServer(cfg, generationService, promptLogService, historyStore, dbClient, connManager)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Yugantar started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Received shutdown signal", "signal", sig)
	case err := <-errCh:
		slog.Error("Shutting down due to server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Yugantar stopped")
}
