// File: tablebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablebook/config"
	"tablebook/cron"
	"tablebook/database"
	locationRepoPkg "tablebook/database/repository/location"
	reservationRepoPkg "tablebook/database/repository/reservation"
	tableRepoPkg "tablebook/database/repository/table"
	waiterRepoPkg "tablebook/database/repository/waiter"
	"tablebook/handlers"
	"tablebook/routes"
	"tablebook/services/booking"
	"tablebook/services/events"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	zone, err := time.LoadLocation(config.AppConfig.DefaultTimeZone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid DEFAULT_TIME_ZONE %q: %v", config.AppConfig.DefaultTimeZone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	tableRepo := tableRepoPkg.NewMongoTableRepo()
	waiterRepo := waiterRepoPkg.NewMongoWaiterRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	locationRepo := locationRepoPkg.NewMongoLocationRepo()

	// Task queue client for reservation lifecycle events.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	publisher := events.NewAsynqPublisher(asynqClient, logger)

	// services.
	selector := &booking.DefaultWaiterSelector{Waiters: waiterRepo}
	reservationService := booking.NewReservationService(
		reservationRepo, tableRepo, waiterRepo, locationRepo, selector, publisher, zone,
	)

	// Background workers: event consumer plus the periodic status reconciler.
	cron.InitReconcileWorker(reservationService)
	cron.InitReconcileScheduler()

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(reservationService, utils.GetCacheClient())
	routes.RegisterRoutes(router, handlerBundle)

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
