package services

import (
	"strings"

	"storerate_backend/internal/auth"
	"storerate_backend/internal/models"
	"storerate_backend/internal/repositories"
	"storerate_backend/internal/services/dto"
	"storerate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	ListUsers(db *gorm.DB, query *dto.UserListQuery) (*dto.ListResponse, error)
	GetUser(db *gorm.DB, id string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// CreateUser - админское создание пользователя с явной ролью
func (s *UserServiceImpl) CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.ValidationError("Invalid role. Allowed values: ADMIN, USER, OWNER")
	}

	email := strings.TrimSpace(req.Email)
	if _, err := s.userRepo.FindByEmail(db, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if req.Address != "" {
		user.Address = &req.Address
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ListUsers - листинг с поиском, фильтром по роли, сортировкой, пагинацией
func (s *UserServiceImpl) ListUsers(db *gorm.DB, query *dto.UserListQuery) (*dto.ListResponse, error) {
	var role models.UserRole
	if query.Role != "" {
		parsed, ok := models.ParseRole(query.Role)
		if !ok {
			return nil, apperrors.ValidationError("Invalid role filter. Allowed values: ADMIN, USER, OWNER")
		}
		role = parsed
	}

	q := query.Normalize("createdAt", "desc")

	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Search:        q.Search,
		Role:          role,
		SortBy:        q.SortBy,
		SortOrder:     q.SortOrder,
		DefaultSortBy: q.DefaultSortBy,
		Page:          q.Page,
		PageSize:      q.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	data := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		data = append(data, dto.NewUserResponse(&users[i]))
	}

	return &dto.ListResponse{
		Data:       data,
		Pagination: dto.NewPagination(total, q.Page, q.PageSize),
	}, nil
}

// GetUser - точечное чтение пользователя админом
func (s *UserServiceImpl) GetUser(db *gorm.DB, id string) (*dto.UserResponse, error) {
	if !isValidID(id) {
		return nil, apperrors.ValidationError("Invalid user id")
	}

	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
