// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/database"
	appointmentRepoPkg "medibook/database/repository/appointment"
	engagementRepoPkg "medibook/database/repository/engagement"
	notificationRepoPkg "medibook/database/repository/notification"
	settingsRepoPkg "medibook/database/repository/settings"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/appointment"
	"medibook/services/notification"
	"medibook/services/settings"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	engagementRepo := engagementRepoPkg.NewMongoEngagementRepo()

	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	if err := settingsRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure settings indexes: %v", err)
	}

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:  notifRepo,
		Users: userRepo,
	}

	settingsService := &settings.DefaultSettingsService{
		Repo:  settingsRepo,
		Users: userRepo,
		Cache: utils.GetCacheClient(),
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:        apptRepo,
		Settings:    settingsService,
		Users:       userRepo,
		Engagement:  engagementRepo,
		Notifier:    notificationService,
		Cache:       utils.GetCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
		HorizonDays: config.AppConfig.AvailabilityHorizonDays,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Appointment endpoints.
		AvailableDatesHandler:    handlers.AvailableDatesHandler(appointmentService),
		CreateAppointmentHandler: handlers.CreateAppointmentHandler(appointmentService),
		ListAppointmentsHandler:  handlers.ListAppointmentsHandler(appointmentService),
		GetAppointmentHandler:    handlers.GetAppointmentHandler(appointmentService),
		UpdateStatusHandler:      handlers.UpdateStatusHandler(appointmentService),

		// Doctor settings endpoints.
		GetSettingsHandler:     handlers.GetSettingsHandler(settingsService),
		UpdateSettingsHandler:  handlers.UpdateSettingsHandler(settingsService),
		SetWorkingHoursHandler: handlers.SetWorkingHoursHandler(settingsService),
		SetDurationHandler:     handlers.SetDurationHandler(settingsService),
		BlockSlotHandler:       handlers.BlockSlotHandler(settingsService),
		UnblockSlotHandler:     handlers.UnblockSlotHandler(settingsService),
		PublicSettingsHandler:  handlers.PublicSettingsHandler(settingsService),

		// Notification endpoints.
		ListNotificationsHandler: handlers.ListNotificationsHandler(notificationService),
		MarkNotificationHandler:  handlers.MarkNotificationHandler(notificationService),
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
