package validator

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"storerate_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	nameMinLen     = 20
	nameMaxLen     = 60
	addressMaxLen  = 400
	passwordMinLen = 8
	passwordMaxLen = 16
)

// local@domain.tld: без пробелов, ровно один @, точка в доменной части
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// --- Чистые доменные проверки ---

// ValidateName проверяет имя: длина после trim в [20, 60].
// Длины считаются в рунах, не в байтах: кириллическое имя
// не должно упираться в лимит вдвое раньше.
func ValidateName(name string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < nameMinLen {
		return errors.New("Name must be at least 20 characters long")
	}
	if length > nameMaxLen {
		return errors.New("Name must be at most 60 characters long")
	}
	return nil
}

// ValidateAddress проверяет адрес: опционален, не длиннее 400 символов
func ValidateAddress(address string) error {
	if utf8.RuneCountInString(address) > addressMaxLen {
		return errors.New("Address must be at most 400 characters long")
	}
	return nil
}

// ValidateEmail проверяет форму email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return errors.New("Invalid email format")
	}
	return nil
}

// ValidatePassword проверяет сложность пароля:
// длина [8, 16], хотя бы одна заглавная ASCII-буква и один не-алфавитно-цифровой символ
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < passwordMinLen || length > passwordMaxLen {
		return errors.New("Password must be between 8 and 16 characters long")
	}

	hasUpper := false
	hasSpecial := false
	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasSpecial {
		return errors.New("Password must contain at least one special character")
	}
	return nil
}

// --- Регистрация кастомных тегов ---

// registerCustomRules регистрирует доменные правила в экземпляре валидатора
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правило не зарегистрировалось - это ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'user-name': имя пользователя или магазина, 20-60 символов после trim
	mustRegister("user-name", validateNameField)

	// 'is-email': форма local@domain.tld
	mustRegister("is-email", validateEmailField)

	// 'password-strength': длина, заглавная, спецсимвол
	mustRegister("password-strength", validatePasswordField)

	// 'is-user-role': роль из закрытого набора ADMIN | OWNER | USER
	mustRegister("is-user-role", validateUserRole)
}

func validateNameField(fl validator.FieldLevel) bool {
	return ValidateName(fl.Field().String()) == nil
}

func validateEmailField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения покрывает 'required'
	}
	return ValidateEmail(value) == nil
}

func validatePasswordField(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String()) == nil
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ParseRole(value)
	return ok
}
