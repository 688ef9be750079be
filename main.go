package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/portview/config"
	"github.com/epeers/portview/docs"
	"github.com/epeers/portview/internal/api"
	"github.com/epeers/portview/internal/handlers"
	"github.com/epeers/portview/internal/middleware"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Portview API
// @version 1.0
// @description View server over the portfolio tracker backend.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Initialize backend client and store
	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	s := store.New(client, store.WithLocation(cfg.Location))

	// Load reference data; the server starts even when the backend is down
	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
	if err := s.Bootstrap(ctx); err != nil {
		log.Warnf("Initial load incomplete: %v", err)
	}
	cancel()

	// Setup Gin router
	if cfg.LogLevel < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	handlers.RegisterRoutes(router, s, client.BaseURL())

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s (backend %s)", cfg.Port, client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
