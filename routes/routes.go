package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes sets up the endpoints for the booking engine.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/available-dates/:doctorId", hb.AvailableDatesHandler)
		api.POST("", middleware.RequireRole(models.RolePatient), hb.CreateAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateStatusHandler)
	}
}

// RegisterSettingsRoutes sets up the doctor scheduling configuration endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctor/settings")
	{
		api.Use(middleware.JWTAuthMiddleware())

		// Public read so clients can render any doctor's booking calendar.
		api.GET("/:doctorId", hb.PublicSettingsHandler)

		// Endpoints that read or modify the caller's own config are doctor-only.
		own := api.Group("")
		own.Use(middleware.RequireDoctor())
		own.GET("", hb.GetSettingsHandler)
		own.PUT("", hb.UpdateSettingsHandler)
		own.PUT("/working-hours", hb.SetWorkingHoursHandler)
		own.PUT("/appointment-duration", hb.SetDurationHandler)
		own.POST("/blocked-slots", hb.BlockSlotHandler)
		own.DELETE("/blocked-slots", hb.UnblockSlotHandler)
	}
}

// RegisterNotificationRoutes sets up the in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Medibook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
