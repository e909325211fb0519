package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/application"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/chat"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/config"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/geocode"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/handler"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/logger"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/middleware"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/routing"
)

const serviceName = "unfoldindia-backend"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Initialize external collaborators
	resolver := geocode.NewResolver(cfg.NominatimURL, cfg.GeocodeTimeout, log)
	router := routing.NewClient(cfg.OSRMURL, cfg.RoutingTimeout, log)
	chatClient := chat.NewClient(cfg.GroqAPIKey, cfg.GroqURL, cfg.ChatTimeout, log)

	// Initialize application service
	routeService := application.NewRouteService(resolver, router, log)

	// Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeService)
	chatHandler := handler.NewChatHandler(chatClient)
	healthHandler := handler.NewHealthHandler(serviceName)

	// Setup Gin router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	// Apply global middleware
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(cfg.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	// Register routes
	healthHandler.RegisterRoutes(engine)
	routeHandler.RegisterRoutes(&engine.RouterGroup)
	chatHandler.RegisterRoutes(&engine.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
