package models

// Rating - одна оценка пользователя для магазина.
// Составной уникальный индекс (user_id, store_id) гарантирует
// не более одной оценки на пару даже при конкурентных запросах.
type Rating struct {
	BaseModel
	Value   int    `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store" json:"userId"`
	StoreID string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store" json:"storeId"`

	// Relations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Store *Store `gorm:"foreignKey:StoreID" json:"-"`
}
