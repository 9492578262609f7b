package services

import (
	"net/http"
	"time"

	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"gorm.io/gorm"
)

// HealthService probes the database with a trivial round-trip query. It
// never returns an error; failures are folded into the unhealthy response.
type HealthService struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

func (s *HealthService) Check() models.HealthResponse {
	if err := s.db.Exec("SELECT 1").Error; err != nil {
		return models.HealthResponse{
			ResponseCode: http.StatusServiceUnavailable,
			Status:       "unhealthy",
			Message:      "database connection failed",
			Connection:   false,
			Timestamp:    time.Now(),
		}
	}

	return models.HealthResponse{
		ResponseCode: http.StatusOK,
		Status:       "healthy",
		Message:      "API is running",
		Connection:   true,
		Timestamp:    time.Now(),
	}
}
