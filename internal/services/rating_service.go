package services

import (
	"storerate_backend/internal/models"
	"storerate_backend/internal/repositories"
	"storerate_backend/internal/services/dto"
	"storerate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RatingService interface {
	Rate(db *gorm.DB, userID, storeID string, value int) (*dto.RateResponse, error)
	MyRating(db *gorm.DB, userID, storeID string) (*dto.MyRatingResponse, error)
}

type RatingServiceImpl struct {
	ratingRepo repositories.RatingRepository
	storeRepo  repositories.StoreRepository
}

func NewRatingService(ratingRepo repositories.RatingRepository, storeRepo repositories.StoreRepository) RatingService {
	return &RatingServiceImpl{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

// Rate сохраняет оценку пользователя: upsert по составному ключу
// (user_id, store_id), затем пересчет среднего по текущим строкам.
// Не больше одной оценки на пару - всегда.
func (s *RatingServiceImpl) Rate(db *gorm.DB, userID, storeID string, value int) (*dto.RateResponse, error) {
	if !isValidID(storeID) {
		return nil, apperrors.ValidationError("Invalid store id")
	}
	if value < 1 || value > 5 {
		return nil, apperrors.ValidationError("Rating value must be an integer between 1 and 5")
	}

	if _, err := s.storeRepo.FindByID(db, storeID); err != nil {
		if apperrors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err, "Store not found")
		}
		return nil, apperrors.InternalError(err)
	}

	rating := &models.Rating{
		Value:   value,
		UserID:  userID,
		StoreID: storeID,
	}
	if err := s.ratingRepo.Upsert(db, rating); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Перечитываем строку: на conflict-ветке upsert метки времени
	// в структуре не отражают состояние базы
	saved, err := s.ratingRepo.FindByUserAndStore(db, userID, storeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	avg, err := s.ratingRepo.AverageForStore(db, storeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RateResponse{
		Message:   "Rating saved successfully",
		Rating:    dto.NewRatingResponse(saved),
		AvgRating: avg,
	}, nil
}

// MyRating - точечное чтение оценки по составному ключу
func (s *RatingServiceImpl) MyRating(db *gorm.DB, userID, storeID string) (*dto.MyRatingResponse, error) {
	if !isValidID(storeID) {
		return nil, apperrors.ValidationError("Invalid store id")
	}

	rating, err := s.ratingRepo.FindByUserAndStore(db, userID, storeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRatingNotFound) {
			return nil, apperrors.ErrNotFound(err, "No rating found for this store by current user")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.MyRatingResponse{
		StoreID: storeID,
		UserID:  userID,
		Rating:  dto.NewRatingResponse(rating),
	}, nil
}
