package dto

// CreateUserRequest - админское создание пользователя любой роли
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,user-name"`
	Email    string `json:"email" validate:"required,is-email"`
	Password string `json:"password" validate:"required,password-strength"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

// UserListQuery - листинг пользователей с фильтром по роли
type UserListQuery struct {
	ListQuery
	Role string `form:"role"`
}

// DashboardResponse - сводка для админ-дашборда
type DashboardResponse struct {
	TotalUsers   int64            `json:"totalUsers"`
	TotalStores  int64            `json:"totalStores"`
	TotalRatings int64            `json:"totalRatings"`
	UsersByRole  map[string]int64 `json:"usersByRole"`
}
