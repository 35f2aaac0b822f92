package repositories

import (
	"errors"
	"time"

	"storerate_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingRepository interface {
	Upsert(db *gorm.DB, rating *models.Rating) error
	FindByUserAndStore(db *gorm.DB, userID, storeID string) (*models.Rating, error)
	AverageForStore(db *gorm.DB, storeID string) (*float64, error)
	FindByStoreWithFilter(db *gorm.DB, criteria RatingFilter) ([]models.Rating, int64, error)
	CountAll(db *gorm.DB) (int64, error)
}

type RatingRepositoryImpl struct{}

// RatingFilter - сортировка/пагинация оценок одного магазина
type RatingFilter struct {
	StoreID       string
	SortBy        string
	SortOrder     string
	DefaultSortBy string
	Page          int
	PageSize      int
}

var ratingSortColumns = map[string]string{
	"value":     "value",
	"createdAt": "created_at",
}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

// Upsert - атомарный insert-or-update по составному ключу (user_id, store_id).
// Уникальный индекс и есть гарантия корректности: конкурирующий второй
// писатель либо обновит ту же строку, либо упрется в constraint,
// но двух строк не будет.
func (r *RatingRepositoryImpl) Upsert(db *gorm.DB, rating *models.Rating) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      rating.Value,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

func (r *RatingRepositoryImpl) FindByUserAndStore(db *gorm.DB, userID, storeID string) (*models.Rating, error) {
	var rating models.Rating
	err := db.First(&rating, "user_id = ? AND store_id = ?", userID, storeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// AverageForStore пересчитывает среднее по текущим строкам.
// nil - когда оценок нет; агрегат никогда не хранится.
func (r *RatingRepositoryImpl) AverageForStore(db *gorm.DB, storeID string) (*float64, error) {
	var avg *float64
	err := db.Model(&models.Rating{}).
		Where("store_id = ?", storeID).
		Select("AVG(value)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}

func (r *RatingRepositoryImpl) FindByStoreWithFilter(db *gorm.DB, criteria RatingFilter) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	query := db.Model(&models.Rating{}).Where("store_id = ?", criteria.StoreID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("User").
		Order(orderClause(ratingSortColumns, criteria.SortBy, criteria.SortOrder, criteria.DefaultSortBy)).
		Limit(limit).Offset(offset).Find(&ratings).Error

	return ratings, total, err
}

func (r *RatingRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Rating{}).Count(&total).Error
	return total, err
}
