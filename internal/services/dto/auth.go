package dto

import (
	"time"

	"storerate_backend/internal/models"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required,user-name"`
	Email    string `json:"email" validate:"required,is-email"`
	Password string `json:"password" validate:"required,password-strength"`
	Address  string `json:"address" validate:"max=400"`
	// Роль опциональна, по умолчанию USER
	Role string `json:"role" validate:"omitempty,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse - публичное представление пользователя
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Address   *string         `json:"address,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// NewUserResponse собирает публичное представление из модели
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}
