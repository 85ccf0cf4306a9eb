// File: worklane/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worklane/config"
	"worklane/cron"
	"worklane/database"
	bookingRepo "worklane/database/repository/booking"
	resourceRepo "worklane/database/repository/resource"
	"worklane/handlers"
	"worklane/middleware"
	"worklane/routes"
	"worklane/services/scheduling"
	"worklane/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resRepo := resourceRepo.NewMongoResourceRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()

	// engine and service.
	engine := scheduling.NewEngine(config.AppConfig.SearchHorizonDays, logger)
	schedulingService := scheduling.NewSchedulingService(resRepo, bookRepo, engine, logger)
	handlers.SchedulingService = schedulingService

	// Background reconciliation of released booking blocks.
	cron.InitReconcileWorker(bookRepo, resRepo)

	// Dependency health snapshots for /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient, time.Minute)

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
