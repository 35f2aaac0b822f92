package handlers

import (
	"net/http"

	"storerate_backend/internal/middleware"
	"storerate_backend/internal/models"
	"storerate_backend/internal/services"
	"storerate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	userService      services.UserService
	storeService     services.StoreService
	analyticsService services.AnalyticsService
}

func NewAdminHandler(
	base *BaseHandler,
	userService services.UserService,
	storeService services.StoreService,
	analyticsService services.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		userService:      userService,
		storeService:     storeService,
		analyticsService: analyticsService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)

		admin.POST("/stores", h.CreateStore)
		admin.GET("/stores", h.ListStores)

		admin.GET("/dashboard", h.Dashboard)
	}
}

// CreateUser - POST /admin/users, создание пользователя любой роли
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// ListUsers - GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	response, err := h.userService.ListUsers(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUser - GET /admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateStore - POST /admin/stores
func (h *AdminHandler) CreateStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.storeService.CreateStore(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListStores - GET /admin/stores, строки с владельцем и avgRating
func (h *AdminHandler) ListStores(c *gin.Context) {
	var query dto.StoreListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	response, err := h.storeService.ListStoresAdmin(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Dashboard - GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	response, err := h.analyticsService.Dashboard(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
