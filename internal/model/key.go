package model

// Key is a physical key, addressed everywhere by its engraved number.
type Key struct {
	Number int64  `gorm:"primaryKey;autoIncrement:false" json:"number"`
	UserID *int64 `gorm:"index" json:"userId"`

	User *User `gorm:"foreignKey:UserID" json:"user"`
}
