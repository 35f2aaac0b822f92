package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storerate_backend/internal/auth"
	"storerate_backend/internal/config"
	"storerate_backend/internal/handlers"
	"storerate_backend/internal/middleware"
	"storerate_backend/internal/models"
	"storerate_backend/internal/routes"
	"storerate_backend/internal/services"
	"storerate_backend/internal/services/dto"
	"storerate_backend/internal/validator"
	"storerate_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Стабы сервисного слоя: функции-поля подставляются в конкретном тесте,
// маршрутизация и middleware при этом настоящие.

type stubAuthService struct {
	signup func(req *dto.SignupRequest) (*dto.AuthResponse, error)
	login  func(req *dto.LoginRequest) (*dto.AuthResponse, error)
	me     func(userID string) (*dto.UserResponse, error)
}

func (s *stubAuthService) Signup(_ *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	return s.signup(req)
}

func (s *stubAuthService) Login(_ *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.login(req)
}

func (s *stubAuthService) Me(_ *gorm.DB, userID string) (*dto.UserResponse, error) {
	return s.me(userID)
}

type stubUserService struct {
	createUser func(req *dto.CreateUserRequest) (*dto.UserResponse, error)
	listUsers  func(query *dto.UserListQuery) (*dto.ListResponse, error)
	getUser    func(id string) (*dto.UserResponse, error)
}

func (s *stubUserService) CreateUser(_ *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	return s.createUser(req)
}

func (s *stubUserService) ListUsers(_ *gorm.DB, query *dto.UserListQuery) (*dto.ListResponse, error) {
	return s.listUsers(query)
}

func (s *stubUserService) GetUser(_ *gorm.DB, id string) (*dto.UserResponse, error) {
	return s.getUser(id)
}

type stubStoreService struct {
	createStore       func(req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error)
	listStoresAdmin   func(query *dto.StoreListQuery) (*dto.ListResponse, error)
	listStoresForUser func(userID string, query *dto.ListQuery) (*dto.ListResponse, error)
	getStoreForUser   func(userID, storeID string) (*dto.UserStoreResponse, error)
}

func (s *stubStoreService) CreateStore(_ *gorm.DB, req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error) {
	return s.createStore(req)
}

func (s *stubStoreService) ListStoresAdmin(_ *gorm.DB, query *dto.StoreListQuery) (*dto.ListResponse, error) {
	return s.listStoresAdmin(query)
}

func (s *stubStoreService) ListStoresForUser(_ *gorm.DB, userID string, query *dto.ListQuery) (*dto.ListResponse, error) {
	return s.listStoresForUser(userID, query)
}

func (s *stubStoreService) GetStoreForUser(_ *gorm.DB, userID, storeID string) (*dto.UserStoreResponse, error) {
	return s.getStoreForUser(userID, storeID)
}

type stubRatingService struct {
	rate     func(userID, storeID string, value int) (*dto.RateResponse, error)
	myRating func(userID, storeID string) (*dto.MyRatingResponse, error)
}

func (s *stubRatingService) Rate(_ *gorm.DB, userID, storeID string, value int) (*dto.RateResponse, error) {
	return s.rate(userID, storeID, value)
}

func (s *stubRatingService) MyRating(_ *gorm.DB, userID, storeID string) (*dto.MyRatingResponse, error) {
	return s.myRating(userID, storeID)
}

type stubOwnerService struct {
	myStore        func(ownerID string) (*dto.StoreResponse, error)
	myStoreRatings func(ownerID string, query *dto.ListQuery) (*dto.OwnerRatingsResponse, error)
}

func (s *stubOwnerService) MyStore(_ *gorm.DB, ownerID string) (*dto.StoreResponse, error) {
	return s.myStore(ownerID)
}

func (s *stubOwnerService) MyStoreRatings(_ *gorm.DB, ownerID string, query *dto.ListQuery) (*dto.OwnerRatingsResponse, error) {
	return s.myStoreRatings(ownerID, query)
}

type stubAnalyticsService struct {
	dashboard func() (*dto.DashboardResponse, error)
}

func (s *stubAnalyticsService) Dashboard(_ *gorm.DB) (*dto.DashboardResponse, error) {
	return s.dashboard()
}

// testServices - набор стабов для сборки роутера; nil-поля допустимы
// для маршрутов, которых тест не касается
type testServices struct {
	auth      services.AuthService
	user      services.UserService
	store     services.StoreService
	rating    services.RatingService
	owner     services.OwnerService
	analytics services.AnalyticsService
}

func setHandlerTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig

	cfg := &config.Config{}
	cfg.JWT.Secret = "handler-test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = prev })
}

func newTestRouter(t *testing.T, svcs testServices) *gin.Engine {
	t.Helper()
	setHandlerTestConfig(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.DBMiddleware(&gorm.DB{}))

	base := handlers.NewBaseHandler(validator.New())
	h := &handlers.AppHandlers{
		Auth:   handlers.NewAuthHandler(base, svcs.auth),
		Admin:  handlers.NewAdminHandler(base, svcs.user, svcs.store, svcs.analytics),
		Store:  handlers.NewStoreHandler(base, svcs.store, svcs.rating),
		Owner:  handlers.NewOwnerHandler(base, svcs.owner),
		Health: handlers.NewHealthHandler(base),
	}
	routes.RegisterRoutes(r, h)
	return r
}

func bearerTokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	user := &models.User{
		BaseModel: models.BaseModel{ID: "caller-" + strings.ToLower(string(role))},
		Email:     strings.ToLower(string(role)) + "@example.com",
		Role:      role,
	}
	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func notFoundErr(message string) error {
	return apperrors.ErrNotFound(errors.New("record not found"), message)
}

func performJSON(r *gin.Engine, method, path, authHeader, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
