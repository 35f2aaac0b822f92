package handlers

import (
	"net/http"
	"time"

	"storerate_backend/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/db-health", h.DBHealth)
}

// Health - GET /health, живость процесса без похода в базу
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Backend is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// DBHealth - GET /db-health, проверка соединения с базой
func (h *HealthHandler) DBHealth(c *gin.Context) {
	var userCount int64
	if err := h.GetDB(c).Model(&models.User{}).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Database connection successful",
		"userCount": userCount,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
