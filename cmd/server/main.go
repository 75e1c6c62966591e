package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/api"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/assistant"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/config"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/db"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/github"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/stats"

	_ "github.com/JunaidJamshid123/Gitly-sub000/docs"
)

// @title Gitly API
// @version 1.0
// @description GitHub client backend: search, profiles, trending, favorites and the AI assistant
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the favorites store
	store, err := db.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize services
	githubClient := github.NewClient(cfg.GitHubToken, logger, github.WithTimeout(cfg.HTTPTimeout))
	githubService := github.NewService(cfg.GitHubToken, logger,
		github.WithAPIClient(githubClient),
		github.WithCacheTTL(cfg.CacheTTL),
	)
	statsService := stats.NewService(githubService, logger)

	var chat api.Assistant
	if cfg.GeminiAPIKey != "" {
		gateway, err := assistant.NewGateway(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, githubService, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize assistant: %v", err)
		}
		defer gateway.Close()
		chat = gateway
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat endpoint disabled")
	}

	apiHandler := api.NewHandler(githubService, store, chat, statsService, logger)

	// Setup router with middleware
	router := api.SetupRouter(apiHandler)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
