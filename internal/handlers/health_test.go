package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"github.com/vflopes/fake-ecommerce-api/internal/services"
)

func TestHealthCheck(t *testing.T) {
	db := setupTestDB()
	handler := NewHealthHandler(services.NewHealthService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/health", nil)
	c.Request = req

	handler.Check(c)

	// the outer status is always 200; the body carries the real code
	assert.Equal(t, http.StatusOK, w.Code)

	var response models.HealthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, http.StatusOK, response.ResponseCode)
	assert.Equal(t, "healthy", response.Status)
	assert.True(t, response.Connection)
	assert.False(t, response.Timestamp.IsZero())
}

func TestHealthCheckUnhealthy(t *testing.T) {
	db := setupTestDB()
	sqlDB, _ := db.DB()
	sqlDB.Close()

	handler := NewHealthHandler(services.NewHealthService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/health", nil)
	c.Request = req

	handler.Check(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response models.HealthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, http.StatusServiceUnavailable, response.ResponseCode)
	assert.Equal(t, "unhealthy", response.Status)
	assert.False(t, response.Connection)
}
