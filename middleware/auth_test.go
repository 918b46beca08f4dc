package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"

	r := gin.New()
	r.GET("/whoami", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString(ContextUserID),
			"role": c.GetString(ContextUserRole),
		})
	})
	r.GET("/doctor-only", JWTAuthMiddleware(), RequireDoctor(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newAuthRouter(t)

	token, err := utils.GenerateToken("pat-1", models.RolePatient, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := doRequest(r, "/whoami", token); w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid token, got %d", w.Code)
	}
	if w := doRequest(r, "/whoami", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
	if w := doRequest(r, "/whoami", "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", w.Code)
	}

	expired, err := utils.GenerateToken("pat-1", models.RolePatient, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if w := doRequest(r, "/whoami", expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r := newAuthRouter(t)

	doctorToken, err := utils.GenerateToken("doc-1", models.RoleDoctor, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	patientToken, err := utils.GenerateToken("pat-1", models.RolePatient, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := doRequest(r, "/doctor-only", doctorToken); w.Code != http.StatusOK {
		t.Errorf("expected 200 for doctor, got %d", w.Code)
	}
	if w := doRequest(r, "/doctor-only", patientToken); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for patient, got %d", w.Code)
	}
}
