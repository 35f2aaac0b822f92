package handlers

import (
	"net/http"

	"storerate_backend/internal/middleware"
	"storerate_backend/internal/models"
	"storerate_backend/internal/services"
	"storerate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	*BaseHandler
	storeService  services.StoreService
	ratingService services.RatingService
}

func NewStoreHandler(base *BaseHandler, storeService services.StoreService, ratingService services.RatingService) *StoreHandler {
	return &StoreHandler{
		BaseHandler:   base,
		storeService:  storeService,
		ratingService: ratingService,
	}
}

func (h *StoreHandler) RegisterRoutes(r *gin.Engine) {
	stores := r.Group("/stores")
	stores.Use(middleware.AuthMiddleware())
	{
		// Просмотр доступен любой авторизованной роли
		stores.GET("", h.ListStores)
		stores.GET("/:id", h.GetStore)

		// Оценивать может только USER
		userOnly := middleware.RequireRoles(models.UserRoleUser)
		stores.POST("/:id/ratings", userOnly, h.RateStore)
		stores.GET("/:id/my-rating", userOnly, h.MyRating)
	}
}

// ListStores - GET /stores, строки с avgRating и myRating
func (h *StoreHandler) ListStores(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	response, err := h.storeService.ListStoresForUser(h.GetDB(c), middleware.GetUserID(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetStore - GET /stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	response, err := h.storeService.GetStoreForUser(h.GetDB(c), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RateStore - POST /stores/:id/ratings, upsert оценки + свежее среднее
func (h *StoreHandler) RateStore(c *gin.Context) {
	var req dto.RateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.ratingService.Rate(h.GetDB(c), middleware.GetUserID(c), c.Param("id"), req.Value)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// MyRating - GET /stores/:id/my-rating
func (h *StoreHandler) MyRating(c *gin.Context) {
	response, err := h.ratingService.MyRating(h.GetDB(c), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
