package handlers

// AppHandlers собирает все хендлеры для регистрации маршрутов
type AppHandlers struct {
	Auth   *AuthHandler
	Admin  *AdminHandler
	Store  *StoreHandler
	Owner  *OwnerHandler
	Health *HealthHandler
}
