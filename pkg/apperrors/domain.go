package apperrors

import "net/http"

// Фабрики и предопределенные переменные для частых доменных ошибок.

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError с понятным клиенту сообщением.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", message, http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrUnauthorized - фабрика для 401 с конкретным сообщением
func ErrUnauthorized(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

// ErrInvalidCredentials - неверная пара email/пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - подпись неверна, токен испорчен или истек
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - роль не входит в allow-list операции
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Forbidden: insufficient permissions",
	http.StatusForbidden,
)

// ErrEmailAlreadyExists - email занят другим пользователем
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Email is already registered",
	http.StatusConflict,
)
