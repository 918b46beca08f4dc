// File: medibook/handlers/settings.go
package handlers

import (
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/settings"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// GetSettingsHandler returns the authenticated doctor's scheduling config,
// creating the default one on first access.
func GetSettingsHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID := c.GetString(middleware.ContextUserID)
		cfg, err := svc.GetOrCreate(c.Request.Context(), doctorID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// PublicSettingsHandler exposes any doctor's scheduling config so clients can
// render the booking calendar.
func PublicSettingsHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID := c.Param("doctorId")
		if doctorID == "" {
			utils.JSONError(c, http.StatusBadRequest, "doctor id is required", "")
			return
		}
		cfg, err := svc.GetOrCreate(c.Request.Context(), doctorID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// UpdateSettingsHandler shallow-merges a partial config over the doctor's
// current one.
func UpdateSettingsHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.DoctorSettingsUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		doctorID := c.GetString(middleware.ContextUserID)
		cfg, err := svc.Replace(c.Request.Context(), doctorID, update)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// SetWorkingHoursHandler replaces the doctor's weekday working-hours table.
func SetWorkingHoursHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			WorkingHours []models.WorkingHours `json:"workingHours" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		doctorID := c.GetString(middleware.ContextUserID)
		cfg, err := svc.SetWorkingHours(c.Request.Context(), doctorID, req.WorkingHours)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// SetDurationHandler changes the doctor's slot length in minutes.
func SetDurationHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			AppointmentDuration int `json:"appointmentDuration" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		doctorID := c.GetString(middleware.ContextUserID)
		cfg, err := svc.SetAppointmentDuration(c.Request.Context(), doctorID, req.AppointmentDuration)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

type blockSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// BlockSlotHandler removes a single date+time from the doctor's availability.
func BlockSlotHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req blockSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		doctorID := c.GetString(middleware.ContextUserID)
		cfg, err := svc.BlockSlot(c.Request.Context(), doctorID, req.Date, req.Time)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// UnblockSlotHandler re-opens a previously blocked slot.
func UnblockSlotHandler(svc settings.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req blockSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		doctorID := c.GetString(middleware.ContextUserID)
		cfg, err := svc.UnblockSlot(c.Request.Context(), doctorID, req.Date, req.Time)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}
