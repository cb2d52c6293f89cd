package dto

import "time"

// Positions and statuses share the single-description shape.
type DescriptionRequest struct {
	Description string `json:"description" validate:"required,min=1"`
}

type RoomRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// IsGlobal is a pointer so that an absent field fails validation while an
// explicit false passes, mirroring the original typeof-boolean check.
type CodeRequest struct {
	Value    string `json:"value"    validate:"required,min=1"`
	IsGlobal *bool  `json:"isGlobal" validate:"required"`
}

type ImportantDateRequest struct {
	Description   string    `json:"description"   validate:"required,min=1"`
	AssignedDate  time.Time `json:"assignedDate"  validate:"required"`
	CurrentOption *bool     `json:"currentOption" validate:"required"`
}
