package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowbook/config"
	"glowbook/cron"
	"glowbook/database"
	catalogRepo "glowbook/database/repository/catalog"
	userRepo "glowbook/database/repository/user"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/routes"
	"glowbook/services/booking"
	"glowbook/services/notification"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewMongoCatalogRepo()
	users := userRepo.NewMongoUserRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitConfirmationWorker(notificationService)

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()

	flowService := &booking.DefaultFlowService{
		Catalog:  catalog,
		Users:    users,
		Matching: booking.NewDefaultMatchingService(),
		Resolver: &booking.DefaultAvailabilityResolver{
			Catalog:         catalog,
			SlotStepMinutes: config.AppConfig.SlotStepMinutes,
		},
		Submitter: &booking.DefaultSubmissionService{
			Delay: time.Duration(config.AppConfig.SubmissionDelayMs) * time.Millisecond,
		},
		Store: booking.NewRedisSessionStore(
			utils.GetSessionCacheClient(),
			time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
		),
		Tasks:      taskClient,
		WindowDays: config.AppConfig.BookingWindowDays,
		Logger:     logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(flowService, logger),
		Catalog: handlers.NewCatalogHandler(catalog),
	}

	// Register routes with the assembled handler bundle.
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
