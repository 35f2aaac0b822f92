package models

// UserRole - закрытый набор ролей, без иерархии
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleOwner UserRole = "OWNER"
	UserRoleUser  UserRole = "USER"
)

type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(60);not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Address      *string  `gorm:"type:varchar(400)" json:"address,omitempty"`

	// Relations
	Store   *Store   `gorm:"foreignKey:OwnerID" json:"store,omitempty"`
	Ratings []Rating `gorm:"foreignKey:UserID" json:"-"`
}

// ParseRole приводит строку к роли, ok=false для неизвестных значений
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case UserRoleAdmin, UserRoleOwner, UserRoleUser:
		return UserRole(s), true
	default:
		return "", false
	}
}
