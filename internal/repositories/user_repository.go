package repositories

import (
	"errors"

	"storerate_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	FindWithFilter(db *gorm.DB, criteria UserFilter) ([]models.User, int64, error)
	CountAll(db *gorm.DB) (int64, error)
	CountByRole(db *gorm.DB, role models.UserRole) (int64, error)
}

type UserRepositoryImpl struct{}

// UserFilter - критерии поиска/сортировки/пагинации списка пользователей
type UserFilter struct {
	Search        string
	Role          models.UserRole
	SortBy        string
	SortOrder     string
	DefaultSortBy string
	Page          int
	PageSize      int
}

// Допустимые поля сортировки; всё остальное падает в дефолт эндпоинта
var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, criteria UserFilter) ([]models.User, int64, error) {
	var users []models.User
	query := db.Model(&models.User{})

	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR address ILIKE ?", search, search, search)
	}
	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order(orderClause(userSortColumns, criteria.SortBy, criteria.SortOrder, criteria.DefaultSortBy)).
		Limit(limit).Offset(offset).Find(&users).Error

	return users, total, err
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.User{}).Count(&total).Error
	return total, err
}

func (r *UserRepositoryImpl) CountByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var total int64
	err := db.Model(&models.User{}).Where("role = ?", role).Count(&total).Error
	return total, err
}
