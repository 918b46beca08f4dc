// File: medibook/handlers/respond.go
package handlers

import (
	"net/http"

	"medibook/services/apperr"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service error codes onto HTTP statuses.
var statusFor = map[string]int{
	apperr.CodeNotFound:          http.StatusNotFound,
	apperr.CodeInvalidArgument:   http.StatusBadRequest,
	apperr.CodeQuotaExceeded:     http.StatusConflict,
	apperr.CodeSlotConflict:      http.StatusConflict,
	apperr.CodeForbidden:         http.StatusForbidden,
	apperr.CodeInvalidTransition: http.StatusConflict,
}

// respondServiceError translates a service error into the appropriate HTTP
// response. Unrecognized errors are logged and reported as a generic 500 so
// internal details never leak to clients.
func respondServiceError(c *gin.Context, err error) {
	if code := apperr.CodeOf(err); code != "" {
		utils.JSONError(c, statusFor[code], err.Error(), "")
		return
	}
	utils.GetLogger().Error("unhandled service error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
}
