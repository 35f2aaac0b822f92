package services

import (
	"strings"

	"storerate_backend/internal/models"
	"storerate_backend/internal/repositories"
	"storerate_backend/internal/services/dto"
	"storerate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type StoreService interface {
	CreateStore(db *gorm.DB, req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error)
	ListStoresAdmin(db *gorm.DB, query *dto.StoreListQuery) (*dto.ListResponse, error)
	ListStoresForUser(db *gorm.DB, userID string, query *dto.ListQuery) (*dto.ListResponse, error)
	GetStoreForUser(db *gorm.DB, userID, storeID string) (*dto.UserStoreResponse, error)
}

type StoreServiceImpl struct {
	storeRepo repositories.StoreRepository
	userRepo  repositories.UserRepository
}

func NewStoreService(storeRepo repositories.StoreRepository, userRepo repositories.UserRepository) StoreService {
	return &StoreServiceImpl{
		storeRepo: storeRepo,
		userRepo:  userRepo,
	}
}

// CreateStore - админское создание магазина.
// ownerId, если задан, обязан указывать на пользователя с ролью OWNER.
func (s *StoreServiceImpl) CreateStore(db *gorm.DB, req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error) {
	store := &models.Store{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
	}

	if req.Email != "" {
		email := strings.TrimSpace(req.Email)
		store.Email = &email
	}

	if req.OwnerID != "" {
		if !isValidID(req.OwnerID) {
			return nil, apperrors.ValidationError("Invalid ownerId")
		}
		owner, err := s.userRepo.FindByID(db, req.OwnerID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ValidationError("Owner user not found")
			}
			return nil, apperrors.InternalError(err)
		}
		if owner.Role != models.UserRoleOwner {
			return nil, apperrors.ValidationError("ownerId must belong to a user with role OWNER")
		}
		store.OwnerID = &owner.ID
		store.Owner = owner
	}

	if err := s.storeRepo.Create(db, store); err != nil {
		if apperrors.Is(err, repositories.ErrStoreEmailAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "Store email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateStoreResponse{
		Message: "Store created successfully",
		Store:   dto.NewStoreResponse(store),
	}, nil
}

// ListStoresAdmin - админский листинг: владелец и avgRating в каждой строке
func (s *StoreServiceImpl) ListStoresAdmin(db *gorm.DB, query *dto.StoreListQuery) (*dto.ListResponse, error) {
	if query.OwnerID != "" && !isValidID(query.OwnerID) {
		return nil, apperrors.ValidationError("Invalid ownerId filter")
	}

	q := query.Normalize("createdAt", "desc")

	stores, total, err := s.storeRepo.FindWithFilter(db, repositories.StoreFilter{
		Search:        q.Search,
		OwnerID:       query.OwnerID,
		SortBy:        q.SortBy,
		SortOrder:     q.SortOrder,
		DefaultSortBy: q.DefaultSortBy,
		Page:          q.Page,
		PageSize:      q.PageSize,
		WithOwner:     true,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		row := dto.NewStoreResponse(&stores[i])
		row.AvgRating = averageOf(stores[i].Ratings)
		data = append(data, row)
	}

	return &dto.ListResponse{
		Data:       data,
		Pagination: dto.NewPagination(total, q.Page, q.PageSize),
	}, nil
}

// ListStoresForUser - пользовательский листинг: avgRating и myRating
// считаются из одного загруженного набора оценок страницы.
// Сортировка по имени по возрастанию, если не задано иное.
func (s *StoreServiceImpl) ListStoresForUser(db *gorm.DB, userID string, query *dto.ListQuery) (*dto.ListResponse, error) {
	q := query.Normalize("name", "asc")

	stores, total, err := s.storeRepo.FindWithFilter(db, repositories.StoreFilter{
		Search:        q.Search,
		SortBy:        q.SortBy,
		SortOrder:     q.SortOrder,
		DefaultSortBy: q.DefaultSortBy,
		Page:          q.Page,
		PageSize:      q.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := make([]dto.UserStoreResponse, 0, len(stores))
	for i := range stores {
		row := dto.UserStoreResponse{StoreResponse: dto.NewStoreResponse(&stores[i])}
		row.AvgRating = averageOf(stores[i].Ratings)
		row.MyRating = myRatingOf(stores[i].Ratings, userID)
		data = append(data, row)
	}

	return &dto.ListResponse{
		Data:       data,
		Pagination: dto.NewPagination(total, q.Page, q.PageSize),
	}, nil
}

// GetStoreForUser - карточка магазина с avgRating и myRating
func (s *StoreServiceImpl) GetStoreForUser(db *gorm.DB, userID, storeID string) (*dto.UserStoreResponse, error) {
	if !isValidID(storeID) {
		return nil, apperrors.ValidationError("Invalid store id")
	}

	store, err := s.storeRepo.FindByIDWithRatings(db, storeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStoreNotFound) {
			return nil, apperrors.ErrNotFound(err, "Store not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.UserStoreResponse{StoreResponse: dto.NewStoreResponse(store)}
	resp.AvgRating = averageOf(store.Ratings)
	resp.MyRating = myRatingOf(store.Ratings, userID)
	return &resp, nil
}
