package model

// RoomAccess links a user to a room they may enter. Rows are hard-deleted
// when the user is removed; the pair has no meaning on its own.
type RoomAccess struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	RoomID int64 `gorm:"primaryKey;autoIncrement:false" json:"roomId"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (RoomAccess) TableName() string { return "room_access" }
