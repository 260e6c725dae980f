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
	"tablebook/database"
	"tablebook/database/repository"
	"tablebook/handlers"
	"tablebook/middleware"
	"tablebook/routes"
	"tablebook/services/booking"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))

	mode, err := booking.ParseWriteMode(cfg.BookingWriteMode)
	if err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo(mongoClient.Database(cfg.DatabaseName), cfg.StoreTimeout)
	if err := bookingRepo.EnsureIndexes(ctx, mode.UniqueSlots()); err != nil {
		logger.Fatal("main: failed to prepare bookings collection", zap.Error(err))
	}

	// optional availability cache.
	var (
		availabilityCache booking.AvailabilityCache
		redisClients      []*redis.Client
	)
	if cfg.RedisAddr != "" {
		cacheClient, err := utils.NewCacheClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: availability cache disabled", zap.Error(err))
		} else {
			availabilityCache = booking.NewRedisAvailabilityCache(cacheClient, cfg.AvailabilityCacheTTL)
			redisClients = append(redisClients, cacheClient)
		}
	}

	// services.
	hours := booking.OperatingHours{
		OpenHour:    cfg.OpenHour,
		CloseHour:   cfg.CloseHour,
		SlotMinutes: cfg.SlotMinutes,
	}
	bookingService, err := booking.NewBookingService(bookingRepo, hours, mode, availabilityCache, logger)
	if err != nil {
		logger.Fatal("main: invalid operating hours", zap.Error(err))
	}
	logger.Info("Booking service ready",
		zap.String("writeMode", string(mode)),
		zap.Strings("slots", hours.Slots()),
	)

	health := utils.NewHealthMonitor(mongoClient, redisClients, 60*time.Second)
	health.Start(ctx)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(ctx, cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Health:  handlers.NewHealthHandler(health),
	}, cfg.AllowedOrigin())

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
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
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	for _, c := range redisClients {
		if err := c.Close(); err != nil {
			logger.Warn("main: failed to close redis client", zap.Error(err))
		}
	}
	if err := database.Disconnect(context.Background(), mongoClient); err != nil {
		logger.Error("main: database disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
