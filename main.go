// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldenbay/config"
	"goldenbay/handlers"
	"goldenbay/routes"
	"goldenbay/services/api"
	"goldenbay/services/wizard"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration.
	config.LoadConfig()

	// Initialize logger.
	logger := utils.GetLogger()
	defer logger.Sync()

	// Initialize Redis (wizard sessions + staff sessions).
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	wizardTTL := time.Duration(config.AppConfig.WizardTTLMinutes) * time.Minute
	staffTTL := time.Duration(config.AppConfig.StaffSessionTTLMinutes) * time.Minute

	// Upstream REST client. Staff requests get a per-session token-bound
	// copy from the session middleware; this base client is for the
	// anonymous surfaces and the login exchange.
	apiClient := api.New(config.AppConfig.BackendBaseURL, logger)

	wizardService := &wizard.DefaultService{
		Backend: apiClient,
		Store:   wizard.NewRedisSessionStore(utils.GetWizardCacheClient(), wizardTTL),
		Windows: wizard.WindowsFromConfig(),
		Logger:  logger,
	}

	sessions := utils.GetSessionCacheClient()
	hb := &routes.HandlerBundle{
		Public:    handlers.NewPublicHandler(apiClient),
		Wizard:    handlers.NewWizardHandler(wizardService, logger),
		Auth:      handlers.NewAuthHandler(apiClient, sessions, staffTTL, logger),
		Bookings:  handlers.NewBookingHandler(wizardService.Windows, logger),
		Customers: handlers.NewCustomerHandler(logger),
		Marketing: handlers.NewMarketingHandler(logger),
		APIClient: apiClient,
		Sessions:  sessions,
		TokenTTL:  staffTTL,
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	routes.RegisterRoutes(router, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Golden Bay frontend service starting",
			zap.String("port", config.AppConfig.AppPort),
			zap.String("backend", config.AppConfig.BackendBaseURL),
			zap.String("env", config.GetEnv()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
