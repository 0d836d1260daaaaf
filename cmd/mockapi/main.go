package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Avishake00/schl-scheduler-frontend/internal/config"
	"github.com/Avishake00/schl-scheduler-frontend/internal/handlers"
	"github.com/Avishake00/schl-scheduler-frontend/internal/utils"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// mockapi serves the scheduling backend the client expects, backed by an
// in-memory store with demo data. Development and test use only.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := handlers.NewMemStore()
	store.Seed()

	router := handlers.SetupRouter(store, validator.New(), logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting mock backend", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down mock backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
