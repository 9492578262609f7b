package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/services"
)

type HealthHandler struct {
	service *services.HealthService
}

func NewHealthHandler(service *services.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check reports liveness. The HTTP status is always 200; the body's
// response_code carries 200 or 503.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Check())
}
