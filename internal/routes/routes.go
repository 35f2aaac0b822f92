package routes

import (
	"storerate_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты приложения.
// Каждый хендлер сам объявляет свою группу и ее allow-list ролей.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	h.Health.RegisterRoutes(r)
	h.Auth.RegisterRoutes(r)
	h.Admin.RegisterRoutes(r)
	h.Store.RegisterRoutes(r)
	h.Owner.RegisterRoutes(r)
}
