package dto

import (
	"time"

	"storerate_backend/internal/models"
)

// RateRequest - тело POST /stores/:id/ratings.
// Значение принимается как есть и проверяется сервисом: [1,5], целое.
type RateRequest struct {
	Value int `json:"value"`
}

// RatingResponse - сохраненная оценка
type RatingResponse struct {
	ID        string    `json:"id"`
	Value     int       `json:"value"`
	UserID    string    `json:"userId"`
	StoreID   string    `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RateResponse - результат rate: строка оценки плюс свежее среднее
type RateResponse struct {
	Message   string         `json:"message"`
	Rating    RatingResponse `json:"rating"`
	AvgRating *float64       `json:"avgRating"`
}

// MyRatingResponse - точечный ответ "моя оценка этого магазина"
type MyRatingResponse struct {
	StoreID string         `json:"storeId"`
	UserID  string         `json:"userId"`
	Rating  RatingResponse `json:"rating"`
}

// StoreRatingRow - строка листинга оценок магазина владельцем
type StoreRatingRow struct {
	ID        string        `json:"id"`
	Value     int           `json:"value"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	User      *OwnerSummary `json:"user,omitempty"`
}

// OwnerRatingsResponse - оценки магазина владельца с пагинацией
type OwnerRatingsResponse struct {
	StoreID    string           `json:"storeId"`
	Data       []StoreRatingRow `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// NewRatingResponse собирает представление из модели
func NewRatingResponse(r *models.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		Value:     r.Value,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
