// File: medibook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Appointment endpoints
	AvailableDatesHandler    gin.HandlerFunc
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	UpdateStatusHandler      gin.HandlerFunc

	// Doctor settings endpoints
	GetSettingsHandler      gin.HandlerFunc
	UpdateSettingsHandler   gin.HandlerFunc
	SetWorkingHoursHandler  gin.HandlerFunc
	SetDurationHandler      gin.HandlerFunc
	BlockSlotHandler        gin.HandlerFunc
	UnblockSlotHandler      gin.HandlerFunc
	PublicSettingsHandler   gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	MarkNotificationHandler  gin.HandlerFunc
}
