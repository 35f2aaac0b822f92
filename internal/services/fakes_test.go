package services

import (
	"strings"
	"testing"
	"time"

	"storerate_backend/internal/models"
	"storerate_backend/internal/repositories"
	"storerate_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Фикстурные идентификаторы: форма uuid обязательна, сервисы отбивают
// кривые id до похода в репозиторий
const (
	adminID   = "8a2e4f6c-1b3d-4e5f-9a7b-0c1d2e3f4a5b"
	ownerID   = "3f9d2c81-5e47-4a6b-8c90-1d2e3f4a5b6c"
	userID1   = "6f1cbd47-9f3a-4a6e-b8a0-21d5f07c9c11"
	userID2   = "b4c5d6e7-f809-4a1b-8c2d-3e4f5a6b7c8d"
	storeID1  = "0b6f8a4e-3a6f-4f4b-9b0e-6a2f8c1d9e11"
	storeID2  = "92d3e4f5-a6b7-4c8d-9e0f-1a2b3c4d5e6f"
	ratingID  = "c1d2e3f4-a5b6-4789-8abc-def012345678"
	ratingID2 = "d9e8f7a6-b5c4-4321-a0fe-dcba98765432"

	// Валидная форма, записи нет
	absentID = "7e8f9a0b-1c2d-4e3f-8a5b-6c7d8e9f0a1b"
)

// assertAppError проверяет HTTP-код и сообщение доменной ошибки
func assertAppError(t *testing.T, err error, httpCode int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected *apperrors.AppError, got %T", err)
	assert.Equal(t, httpCode, appErr.HTTPCode)
	assert.Equal(t, message, appErr.Message)
}

// Фейковые репозитории в памяти. Аргумент db игнорируется:
// сервисы тестируются без базы, контракт тот же.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindWithFilter(_ *gorm.DB, criteria repositories.UserFilter) ([]models.User, int64, error) {
	var matched []models.User
	for _, u := range f.users {
		if criteria.Role != "" && u.Role != criteria.Role {
			continue
		}
		if criteria.Search != "" && !userMatches(u, criteria.Search) {
			continue
		}
		matched = append(matched, *u)
	}
	total := int64(len(matched))
	return paginate(matched, criteria.Page, criteria.PageSize), total, nil
}

func userMatches(u *models.User, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(u.Name), s) || strings.Contains(strings.ToLower(u.Email), s) {
		return true
	}
	return u.Address != nil && strings.Contains(strings.ToLower(*u.Address), s)
}

func (f *fakeUserRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(_ *gorm.DB, role models.UserRole) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeStoreRepo struct {
	stores []*models.Store
}

func (f *fakeStoreRepo) Create(_ *gorm.DB, store *models.Store) error {
	if store.Email != nil {
		for _, s := range f.stores {
			if s.Email != nil && *s.Email == *store.Email {
				return repositories.ErrStoreEmailAlreadyExists
			}
		}
	}
	if store.ID == "" {
		store.ID = uuid.NewString()
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt
	f.stores = append(f.stores, store)
	return nil
}

func (f *fakeStoreRepo) FindByID(_ *gorm.DB, id string) (*models.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.ErrStoreNotFound
}

func (f *fakeStoreRepo) FindByIDWithRatings(db *gorm.DB, id string) (*models.Store, error) {
	return f.FindByID(db, id)
}

func (f *fakeStoreRepo) FindByOwner(_ *gorm.DB, ownerID string) (*models.Store, error) {
	for _, s := range f.stores {
		if s.OwnerID != nil && *s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, repositories.ErrStoreNotFound
}

func (f *fakeStoreRepo) FindWithFilter(_ *gorm.DB, criteria repositories.StoreFilter) ([]models.Store, int64, error) {
	var matched []models.Store
	for _, s := range f.stores {
		if criteria.OwnerID != "" && (s.OwnerID == nil || *s.OwnerID != criteria.OwnerID) {
			continue
		}
		if criteria.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(criteria.Search)) {
			continue
		}
		matched = append(matched, *s)
	}
	total := int64(len(matched))
	return paginate(matched, criteria.Page, criteria.PageSize), total, nil
}

func (f *fakeStoreRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.stores)), nil
}

type fakeRatingRepo struct {
	ratings []*models.Rating
}

func (f *fakeRatingRepo) Upsert(_ *gorm.DB, rating *models.Rating) error {
	for _, r := range f.ratings {
		if r.UserID == rating.UserID && r.StoreID == rating.StoreID {
			r.Value = rating.Value
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	rating.CreatedAt = time.Now()
	rating.UpdatedAt = rating.CreatedAt
	f.ratings = append(f.ratings, rating)
	return nil
}

func (f *fakeRatingRepo) FindByUserAndStore(_ *gorm.DB, userID, storeID string) (*models.Rating, error) {
	for _, r := range f.ratings {
		if r.UserID == userID && r.StoreID == storeID {
			return r, nil
		}
	}
	return nil, repositories.ErrRatingNotFound
}

func (f *fakeRatingRepo) AverageForStore(_ *gorm.DB, storeID string) (*float64, error) {
	sum, count := 0, 0
	for _, r := range f.ratings {
		if r.StoreID == storeID {
			sum += r.Value
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(count)
	return &avg, nil
}

func (f *fakeRatingRepo) FindByStoreWithFilter(_ *gorm.DB, criteria repositories.RatingFilter) ([]models.Rating, int64, error) {
	var matched []models.Rating
	for _, r := range f.ratings {
		if r.StoreID == criteria.StoreID {
			matched = append(matched, *r)
		}
	}
	total := int64(len(matched))
	return paginate(matched, criteria.Page, criteria.PageSize), total, nil
}

func (f *fakeRatingRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(f.ratings)), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func strPtr(s string) *string { return &s }
