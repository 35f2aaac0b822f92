package services

import (
	"storerate_backend/internal/models"
	"storerate_backend/internal/repositories"
	"storerate_backend/internal/services/dto"
	"storerate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnalyticsService interface {
	Dashboard(db *gorm.DB) (*dto.DashboardResponse, error)
}

type AnalyticsServiceImpl struct {
	userRepo   repositories.UserRepository
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	storeRepo repositories.StoreRepository,
	ratingRepo repositories.RatingRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// Dashboard - сводные счетчики для админ-дашборда
func (s *AnalyticsServiceImpl) Dashboard(db *gorm.DB) (*dto.DashboardResponse, error) {
	totalUsers, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalStores, err := s.storeRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalRatings, err := s.ratingRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	usersByRole := make(map[string]int64, 3)
	for _, role := range []models.UserRole{models.UserRoleAdmin, models.UserRoleOwner, models.UserRoleUser} {
		count, err := s.userRepo.CountByRole(db, role)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		usersByRole[string(role)] = count
	}

	return &dto.DashboardResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
		UsersByRole:  usersByRole,
	}, nil
}
