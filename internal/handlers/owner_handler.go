package handlers

import (
	"net/http"

	"storerate_backend/internal/middleware"
	"storerate_backend/internal/models"
	"storerate_backend/internal/services"
	"storerate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	*BaseHandler
	ownerService services.OwnerService
}

func NewOwnerHandler(base *BaseHandler, ownerService services.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		BaseHandler:  base,
		ownerService: ownerService,
	}
}

func (h *OwnerHandler) RegisterRoutes(r *gin.Engine) {
	owner := r.Group("/owner")
	owner.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleOwner))
	{
		owner.GET("/my-store", h.MyStore)
		owner.GET("/my-store/ratings", h.MyStoreRatings)
	}
}

// MyStore - GET /owner/my-store
func (h *OwnerHandler) MyStore(c *gin.Context) {
	response, err := h.ownerService.MyStore(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// MyStoreRatings - GET /owner/my-store/ratings
func (h *OwnerHandler) MyStoreRatings(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	response, err := h.ownerService.MyStoreRatings(h.GetDB(c), middleware.GetUserID(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
