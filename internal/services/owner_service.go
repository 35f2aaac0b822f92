package services

import (
	"storerate_backend/internal/repositories"
	"storerate_backend/internal/services/dto"
	"storerate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type OwnerService interface {
	MyStore(db *gorm.DB, ownerID string) (*dto.StoreResponse, error)
	MyStoreRatings(db *gorm.DB, ownerID string, query *dto.ListQuery) (*dto.OwnerRatingsResponse, error)
}

type OwnerServiceImpl struct {
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
}

func NewOwnerService(storeRepo repositories.StoreRepository, ratingRepo repositories.RatingRepository) OwnerService {
	return &OwnerServiceImpl{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// MyStore - магазин владельца со средней оценкой и числом оценок
func (s *OwnerServiceImpl) MyStore(db *gorm.DB, ownerID string) (*dto.StoreResponse, error) {
	store, err := s.storeRepo.FindByOwner(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err, "No store found for this owner")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewStoreResponse(store)
	resp.AvgRating = averageOf(store.Ratings)
	total := int64(len(store.Ratings))
	resp.TotalRatings = &total
	return &resp, nil
}

// MyStoreRatings - оценки магазина владельца: кто и когда поставил,
// с сортировкой по value/createdAt и пагинацией
func (s *OwnerServiceImpl) MyStoreRatings(db *gorm.DB, ownerID string, query *dto.ListQuery) (*dto.OwnerRatingsResponse, error) {
	store, err := s.storeRepo.FindByOwner(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err, "No store found for this owner")
		}
		return nil, apperrors.InternalError(err)
	}

	q := query.Normalize("createdAt", "desc")

	ratings, total, err := s.ratingRepo.FindByStoreWithFilter(db, repositories.RatingFilter{
		StoreID:       store.ID,
		SortBy:        q.SortBy,
		SortOrder:     q.SortOrder,
		DefaultSortBy: q.DefaultSortBy,
		Page:          q.Page,
		PageSize:      q.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := make([]dto.StoreRatingRow, 0, len(ratings))
	for i := range ratings {
		row := dto.StoreRatingRow{
			ID:        ratings[i].ID,
			Value:     ratings[i].Value,
			CreatedAt: ratings[i].CreatedAt,
			UpdatedAt: ratings[i].UpdatedAt,
		}
		if ratings[i].User != nil {
			row.User = &dto.OwnerSummary{
				ID:    ratings[i].User.ID,
				Name:  ratings[i].User.Name,
				Email: ratings[i].User.Email,
				Role:  ratings[i].User.Role,
			}
		}
		data = append(data, row)
	}

	return &dto.OwnerRatingsResponse{
		StoreID:    store.ID,
		Data:       data,
		Pagination: dto.NewPagination(total, q.Page, q.PageSize),
	}, nil
}
