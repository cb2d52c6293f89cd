package model

import "time"

// Position classifies users (Student, Professor, Staff; seeded by cmd/seed).
type Position struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`
}

// Status classifies desks (e.g. Available, Assigned, Broken).
type Status struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`
}

// Room is a department room that users can be granted access to.
type Room struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// Code is a door code; global codes open every door.
type Code struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Value    string `gorm:"not null" json:"value"`
	IsGlobal bool   `gorm:"not null;default:false" json:"isGlobal"`
}

// ImportantDate is a deadline shown on the dashboard. CurrentOption marks
// the date as belonging to the currently offered option/term.
type ImportantDate struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Description   string    `gorm:"not null" json:"description"`
	AssignedDate  time.Time `gorm:"not null" json:"assignedDate"`
	CurrentOption bool      `gorm:"not null;default:false" json:"currentOption"`
}

func (ImportantDate) TableName() string { return "important_dates" }
