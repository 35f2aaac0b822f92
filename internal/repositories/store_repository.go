package repositories

import (
	"errors"

	"storerate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStoreNotFound           = errors.New("store not found")
	ErrStoreEmailAlreadyExists = errors.New("store email already exists")
)

type StoreRepository interface {
	Create(db *gorm.DB, store *models.Store) error
	FindByID(db *gorm.DB, id string) (*models.Store, error)
	FindByIDWithRatings(db *gorm.DB, id string) (*models.Store, error)
	FindByOwner(db *gorm.DB, ownerID string) (*models.Store, error)
	FindWithFilter(db *gorm.DB, criteria StoreFilter) ([]models.Store, int64, error)
	CountAll(db *gorm.DB) (int64, error)
}

type StoreRepositoryImpl struct{}

// StoreFilter - критерии поиска/сортировки/пагинации списка магазинов
type StoreFilter struct {
	Search        string
	OwnerID       string
	SortBy        string
	SortOrder     string
	DefaultSortBy string
	Page          int
	PageSize      int

	// Листинги обогащаются avgRating/myRating из загруженных оценок страницы
	WithOwner bool
}

var storeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

func NewStoreRepository() StoreRepository {
	return &StoreRepositoryImpl{}
}

func (r *StoreRepositoryImpl) Create(db *gorm.DB, store *models.Store) error {
	if err := db.Create(store).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrStoreEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *StoreRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Store, error) {
	var store models.Store
	err := db.First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepositoryImpl) FindByIDWithRatings(db *gorm.DB, id string) (*models.Store, error) {
	var store models.Store
	err := db.Preload("Ratings").First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindByOwner возвращает магазин владельца; в этой модели у владельца
// не больше одного магазина.
func (r *StoreRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) (*models.Store, error) {
	var store models.Store
	err := db.Preload("Ratings").First(&store, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepositoryImpl) FindWithFilter(db *gorm.DB, criteria StoreFilter) ([]models.Store, int64, error) {
	var stores []models.Store
	query := db.Model(&models.Store{})

	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR address ILIKE ?", search, search, search)
	}
	if criteria.OwnerID != "" {
		query = query.Where("owner_id = ?", criteria.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	query = query.Preload("Ratings")
	if criteria.WithOwner {
		query = query.Preload("Owner")
	}

	err := query.Order(orderClause(storeSortColumns, criteria.SortBy, criteria.SortOrder, criteria.DefaultSortBy)).
		Limit(limit).Offset(offset).Find(&stores).Error

	return stores, total, err
}

func (r *StoreRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Store{}).Count(&total).Error
	return total, err
}
