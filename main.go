// File: feastly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feastly/config"
	"feastly/database"
	accountRepo "feastly/database/repository/account"
	availabilityRepo "feastly/database/repository/availability"
	bookingRepo "feastly/database/repository/booking"
	eventRepo "feastly/database/repository/event"
	spaceRepo "feastly/database/repository/space"
	"feastly/handlers"
	"feastly/middleware"
	"feastly/routes"
	availabilitySvc "feastly/services/availability"
	bookingSvc "feastly/services/booking"
	eventSvc "feastly/services/event"
	"feastly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	blockRepo := availabilityRepo.NewMongoBlockRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	events := eventRepo.NewMongoEventRepo()
	spaces := spaceRepo.NewMongoSpaceRepo()
	accounts := accountRepo.NewMongoAccountRepo()

	// services.
	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		BlockRepo: blockRepo,
		SpaceRepo: spaces,
		Cache:     utils.GetCacheClient(),
	}
	bookingService := &bookingSvc.DefaultBookingService{
		BookingRepo: bookings,
		BlockRepo:   blockRepo,
		EventRepo:   events,
		SpaceRepo:   spaces,
		AccountRepo: accounts,
	}
	eventService := &eventSvc.DefaultEventService{
		EventRepo:   events,
		BookingRepo: bookings,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Event:        handlers.NewEventHandler(eventService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

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
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("error disconnecting mongo: %v", err)
	}
	logger.Info("Server exited")
}
