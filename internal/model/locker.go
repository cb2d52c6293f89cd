package model

import "time"

// Locker is a hallway locker. UserID carries a unique index so a user can
// hold at most one locker; postgres permits multiple NULLs in the index, so
// unassigned lockers are unconstrained.
type Locker struct {
	Number    int64      `gorm:"primaryKey;autoIncrement:false" json:"number"`
	UserID    *int64     `gorm:"uniqueIndex" json:"userId"`
	ClassName *string    `json:"className"`
	EndDate   *time.Time `json:"endDate"`

	User *User `gorm:"foreignKey:UserID" json:"user"`
}
