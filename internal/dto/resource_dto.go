package dto

import "time"

// ─── Keys ────────────────────────────────────────────────────────────────────

type CreateKeyRequest struct {
	Number int64  `json:"number" validate:"required,gt=0"`
	UserID *int64 `json:"userId" validate:"omitempty,gt=0"`
}

// ─── Lockers ─────────────────────────────────────────────────────────────────

type CreateLockerRequest struct {
	Number    int64      `json:"number"    validate:"required,gt=0"`
	UserID    *int64     `json:"userId"    validate:"omitempty,gt=0"`
	ClassName *string    `json:"className"`
	EndDate   *time.Time `json:"endDate"`
}

type UpdateLockerRequest struct {
	UserID    *int64     `json:"userId"    validate:"omitempty,gt=0"`
	ClassName *string    `json:"className"`
	EndDate   *time.Time `json:"endDate"`
}

// ─── Desks ───────────────────────────────────────────────────────────────────

type CreateDeskRequest struct {
	Number      int64      `json:"number"      validate:"required,gt=0"`
	StudentID   *int64     `json:"studentId"   validate:"omitempty,gt=0"`
	ProfessorID *int64     `json:"professorId" validate:"omitempty,gt=0"`
	StatusID    int64      `json:"statusId"    validate:"required,gt=0"`
	EndDate     *time.Time `json:"endDate"`
}

type UpdateDeskRequest struct {
	StudentID   *int64     `json:"studentId"   validate:"omitempty,gt=0"`
	ProfessorID *int64     `json:"professorId" validate:"omitempty,gt=0"`
	StatusID    int64      `json:"statusId"    validate:"required,gt=0"`
	EndDate     *time.Time `json:"endDate"`
}
