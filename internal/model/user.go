package model

// User is a tracked department member (student, professor, or staff).
// ByuID and NetID are optional campus identifiers.
type User struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	FirstName  string  `gorm:"not null" json:"firstName"`
	LastName   string  `gorm:"index;not null" json:"lastName"`
	Email      string  `gorm:"not null" json:"email"`
	ByuID      *string `gorm:"column:byu_id" json:"byuId"`
	NetID      *string `gorm:"column:net_id" json:"netId"`
	PositionID int64   `gorm:"not null" json:"positionId"`

	Position *Position `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}
