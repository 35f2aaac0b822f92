package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName_Boundaries(t *testing.T) {
	// Границы включительны с обеих сторон: [20, 60]
	assert.Error(t, ValidateName(strings.Repeat("a", 19)))
	assert.NoError(t, ValidateName(strings.Repeat("a", 20)))
	assert.NoError(t, ValidateName(strings.Repeat("a", 60)))
	assert.Error(t, ValidateName(strings.Repeat("a", 61)))
}

func TestValidateName_MultiByte(t *testing.T) {
	// Длина считается в рунах: 20 кириллических букв - это 40 байт,
	// но всё ещё ровно нижняя граница
	assert.Error(t, ValidateName(strings.Repeat("ж", 19)))
	assert.NoError(t, ValidateName(strings.Repeat("ж", 20)))
	assert.NoError(t, ValidateName(strings.Repeat("ж", 60)))
	assert.Error(t, ValidateName(strings.Repeat("ж", 61)))
}

func TestValidateName_Trimmed(t *testing.T) {
	// Пробелы по краям не считаются
	assert.Error(t, ValidateName("   "+strings.Repeat("a", 19)+"   "))
	assert.NoError(t, ValidateName("   "+strings.Repeat("a", 20)+"   "))
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(""))
	assert.NoError(t, ValidateAddress(strings.Repeat("a", 400)))
	assert.Error(t, ValidateAddress(strings.Repeat("a", 401)))

	// Руны, не байты
	assert.NoError(t, ValidateAddress(strings.Repeat("ж", 400)))
	assert.Error(t, ValidateAddress(strings.Repeat("ж", 401)))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("  user@example.com  "))

	assert.Error(t, ValidateEmail("userexample.com"))   // нет @
	assert.Error(t, ValidateEmail("user@examplecom"))   // нет точки в домене
	assert.Error(t, ValidateEmail("us er@example.com")) // пробел
	assert.Error(t, ValidateEmail("user@@example.com")) // два @
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	// 8 символов, заглавная, спецсимвол
	assert.NoError(t, ValidatePassword("Abcdefg!"))

	// нет заглавной
	assert.Error(t, ValidatePassword("abcdefg!"))

	// нет спецсимвола (цифры не считаются)
	assert.Error(t, ValidatePassword("ABCDEFGH"))
	assert.Error(t, ValidatePassword("Abcdefg1"))

	// длина
	assert.Error(t, ValidatePassword("Abcdef!"))            // 7
	assert.Error(t, ValidatePassword("Abcdefghijklmnop!"))  // 17
	assert.NoError(t, ValidatePassword("Abcdefghijklmno!")) // 16

	// Многобайтные символы считаются по рунам; не-ASCII буква
	// заодно закрывает требование спецсимвола
	assert.NoError(t, ValidatePassword("Abcdпароль123456")) // 16 рун
	assert.Error(t, ValidatePassword("Abcdпароль1234567"))  // 17 рун
}

func TestValidator_CustomTags(t *testing.T) {
	v := New()

	type signupShape struct {
		Name     string `json:"name" validate:"required,user-name"`
		Email    string `json:"email" validate:"required,is-email"`
		Password string `json:"password" validate:"required,password-strength"`
		Role     string `json:"role" validate:"omitempty,is-user-role"`
	}

	valid := signupShape{
		Name:     strings.Repeat("a", 25),
		Email:    "user@example.com",
		Password: "Abcdefg!",
	}
	assert.NoError(t, v.Validate(valid))

	valid.Role = "OWNER"
	assert.NoError(t, v.Validate(valid))

	invalid := valid
	invalid.Role = "SUPERADMIN"
	err := v.Validate(invalid)
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
}
