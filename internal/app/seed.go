package app

import (
	"errors"

	"storerate_backend/internal/auth"
	"storerate_backend/internal/config"
	"storerate_backend/internal/logger"
	"storerate_backend/internal/models"
	"storerate_backend/internal/repositories"

	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "Admin@1234"
	defaultAdminName     = "Default System Administrator User"
)

// seedFirstAdmin создает стартового админа, если его еще нет.
// Учетные данные берутся из конфигурации, иначе - дефолтные.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	email := cfg.Admin.Email
	if email == "" {
		email = defaultAdminEmail
	}
	password := cfg.Admin.Password
	if password == "" {
		password = defaultAdminPassword
	}
	name := cfg.Admin.Name
	if name == "" {
		name = defaultAdminName
	}

	userRepo := repositories.NewUserRepository()

	if _, err := userRepo.FindByEmail(db, email); err == nil {
		logger.Info("Admin user already exists", "email", email)
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logger.Info("Admin user created", "email", email)
	return nil
}
