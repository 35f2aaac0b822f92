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

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Signup - самостоятельная регистрация. Роль опциональна (USER по умолчанию),
// валидация полей уже выполнена на границе.
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	role := models.UserRoleUser
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			return nil, apperrors.ValidationError("Invalid role selected")
		}
		role = parsed
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

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "Signup successful",
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}

// Login - аутентификация по email и паролю.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}

// Me возвращает свежую запись пользователя по id из токена
func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
