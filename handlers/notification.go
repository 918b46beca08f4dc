// File: medibook/handlers/notification.go
package handlers

import (
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/notification"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns the caller's notifications, newest first.
func ListNotificationsHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		items, err := svc.ListForUser(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if items == nil {
			items = []models.Notification{}
		}
		c.JSON(http.StatusOK, gin.H{"notifications": items})
	}
}

// MarkNotificationHandler flags one of the caller's notifications as read.
func MarkNotificationHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		if err := svc.MarkRead(c.Request.Context(), c.Param("id"), userID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
