package model

import "time"

// Desk is an office desk. A desk can be assigned to a student, supervised by
// a professor, or both; either reference may be empty.
type Desk struct {
	Number      int64      `gorm:"primaryKey;autoIncrement:false" json:"number"`
	StudentID   *int64     `gorm:"index" json:"studentId"`
	ProfessorID *int64     `gorm:"index" json:"professorId"`
	StatusID    int64      `gorm:"not null" json:"statusId"`
	EndDate     *time.Time `json:"endDate"`

	Student   *User   `gorm:"foreignKey:StudentID" json:"student"`
	Professor *User   `gorm:"foreignKey:ProfessorID" json:"professor"`
	Status    *Status `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}
