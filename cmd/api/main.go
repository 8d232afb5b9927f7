package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/NotMedic/PopUpVideo/internal/config"
	"github.com/NotMedic/PopUpVideo/internal/generator"
	"github.com/NotMedic/PopUpVideo/internal/grok"
	"github.com/NotMedic/PopUpVideo/internal/logging"
	"github.com/NotMedic/PopUpVideo/internal/metrics"
	"github.com/NotMedic/PopUpVideo/internal/store"
	"github.com/NotMedic/PopUpVideo/internal/transcript"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	factsStore, err := store.New(cfg.Facts.Dir)
	if err != nil {
		logger.Fatalf("Failed to initialize facts store: %v", err)
	}

	// No credential means fallback mode, not a startup failure.
	var chatClient generator.ChatClient
	clientMode := "fallback (no API key configured)"
	if cfg.Grok.APIKey != "" {
		chatClient = grok.NewClient(grok.Config{
			APIKey:  cfg.Grok.APIKey,
			Model:   cfg.Grok.Model,
			BaseURL: cfg.Grok.BaseURL,
			Timeout: cfg.Grok.Timeout,
		})
		clientMode = "initialized"
	}

	transcripts := transcript.NewClient(transcript.Config{
		Enabled:  cfg.Transcript.Enabled,
		BaseURL:  cfg.Transcript.BaseURL,
		Language: cfg.Transcript.Language,
		Timeout:  cfg.Transcript.Timeout,
	})

	api := &API{
		store:       factsStore,
		generator:   generator.New(chatClient),
		transcripts: transcripts,
		log:         logger,
	}

	gin.SetMode(gin.ReleaseMode)
	router := setupRouter(api)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Infof("%s starting on %s", serviceName, addr)
	logger.Infof("Facts directory: %s", factsStore.Dir())
	logger.Infof("Model: %s, client: %s", cfg.Grok.Model, clientMode)
	logger.Info("Endpoints: GET /health, POST /generate-facts, GET /list-facts")

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Port)
		go func() {
			logger.Infof("Metrics server listening on :%d", cfg.Metrics.Port)
			if err := metricsServer.Start(); err != nil {
				logger.Errorf("Metrics server error: %v", err)
			}
		}()
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("Metrics server shutdown: %v", err)
		}
	}

	logger.Info("Server stopped")
}
