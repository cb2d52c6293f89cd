package dto

import "deptdash/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	FirstName  string  `json:"firstName"  validate:"required,min=1"`
	LastName   string  `json:"lastName"   validate:"required,min=1"`
	Email      string  `json:"email"      validate:"required,email"`
	ByuID      *string `json:"byuId"`
	NetID      *string `json:"netId"`
	PositionID int64   `json:"positionId" validate:"required,gt=0"`
}

type ReplaceRoomsRequest struct {
	RoomIDs []int64 `json:"roomIds" validate:"required,dive,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserSearchResult is the trimmed-down record returned by the typeahead
// search endpoint.
type UserSearchResult struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	ByuID     *string `json:"byuId"`
	NetID     *string `json:"netId"`
}

type UserSearchResponse struct {
	Results []UserSearchResult `json:"results"`
	HasMore bool               `json:"hasMore"`
}

type DeleteUserResponse struct {
	Message     string      `json:"message"`
	DeletedUser *model.User `json:"deletedUser"`
}

type BulkDeleteRequest struct {
	IDs []interface{} `json:"ids"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// DeleteCheckResponse lists everything still referencing a user so the
// frontend can warn before a cascade delete. CanDelete is always true for
// now; deletion is advisory-gated only.
type DeleteCheckResponse struct {
	CanDelete        bool           `json:"canDelete"`
	Lockers          []model.Locker `json:"lockers"`
	Keys             []model.Key    `json:"keys"`
	DesksAsStudent   []model.Desk   `json:"desksAsStudent"`
	DesksAsProfessor []model.Desk   `json:"desksAsProfessor"`
	RoomAccessCount  int64          `json:"roomAccessCount"`
}
