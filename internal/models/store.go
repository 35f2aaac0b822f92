package models

type Store struct {
	BaseModel
	Name    string  `gorm:"type:varchar(60);not null" json:"name"`
	Email   *string `gorm:"uniqueIndex" json:"email"`
	Address string  `gorm:"type:varchar(400);not null" json:"address"`
	OwnerID *string `gorm:"type:uuid;index" json:"ownerId"`

	// Relations
	Owner   *User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Ratings []Rating `gorm:"foreignKey:StoreID" json:"-"`
}
