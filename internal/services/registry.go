package services

// ServiceContainer собирает все сервисы для передачи в слой хендлеров
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	StoreService     StoreService
	RatingService    RatingService
	OwnerService     OwnerService
	AnalyticsService AnalyticsService
}
