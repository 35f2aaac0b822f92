package dto

import (
	"time"

	"storerate_backend/internal/models"
)

// CreateStoreRequest - админское создание магазина.
// ownerId опционален и обязан ссылаться на пользователя с ролью OWNER.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,user-name"`
	Email   string `json:"email" validate:"omitempty,is-email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID string `json:"ownerId"`
}

// StoreListQuery - листинг магазинов с фильтром по владельцу
type StoreListQuery struct {
	ListQuery
	OwnerID string `form:"ownerId"`
}

// OwnerSummary - краткое представление владельца в ответах о магазине
type OwnerSummary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// StoreResponse - магазин с производными полями.
// AvgRating указателен: null в JSON означает "оценок нет", никогда не 0.
type StoreResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        *string       `json:"email"`
	Address      string        `json:"address"`
	OwnerID      *string       `json:"ownerId"`
	Owner        *OwnerSummary `json:"owner,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	AvgRating    *float64      `json:"avgRating"`
	TotalRatings *int64        `json:"totalRatings,omitempty"`
}

// UserStoreResponse - магазин в пользовательском контексте:
// myRating всегда присутствует, null когда пользователь не оценивал.
type UserStoreResponse struct {
	StoreResponse
	MyRating *int `json:"myRating"`
}

// NewStoreResponse собирает базовое представление без производных полей
func NewStoreResponse(s *models.Store) StoreResponse {
	resp := StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
	}
	if s.Owner != nil {
		resp.Owner = &OwnerSummary{
			ID:    s.Owner.ID,
			Name:  s.Owner.Name,
			Email: s.Owner.Email,
			Role:  s.Owner.Role,
		}
	}
	return resp
}

type CreateStoreResponse struct {
	Message string        `json:"message"`
	Store   StoreResponse `json:"store"`
}
