// File: medibook/handlers/appointment.go
package handlers

import (
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/appointment"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AvailableDatesHandler returns the bookable slot calendar for a doctor.
func AvailableDatesHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID := c.Param("doctorId")
		if doctorID == "" {
			utils.JSONError(c, http.StatusBadRequest, "doctor id is required", "")
			return
		}
		resp, err := svc.AvailableDates(c.Request.Context(), doctorID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreateAppointmentHandler books a slot for the authenticated patient.
func CreateAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateAppointmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		patientID := c.GetString(middleware.ContextUserID)
		appt, err := svc.Create(c.Request.Context(), patientID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, appt)
	}
}

// ListAppointmentsHandler returns the caller's own appointments, newest first.
func ListAppointmentsHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		role := c.GetString(middleware.ContextUserRole)
		appts, err := svc.ListForUser(c.Request.Context(), userID, role)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if appts == nil {
			appts = []models.Appointment{}
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
	}
}

// GetAppointmentHandler returns one appointment with engagement flags.
func GetAppointmentHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetString(middleware.ContextUserID)
		detail, err := svc.GetByID(c.Request.Context(), c.Param("id"), callerID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// UpdateStatusHandler moves an appointment through its lifecycle.
func UpdateStatusHandler(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateAppointmentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		callerID := c.GetString(middleware.ContextUserID)
		role := c.GetString(middleware.ContextUserRole)
		appt, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, callerID, role)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}
