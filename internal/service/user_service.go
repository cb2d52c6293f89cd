package service

import (
	"context"
	"strings"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"
	"deptdash/internal/search"
)

const (
	searchDefaultLimit = 10
	searchMaxLimit     = 50
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error)
	List(ctx context.Context, filter repository.UserFilter) ([]model.User, error)
	Search(ctx context.Context, q string, limit int, positionID *int64) (*dto.UserSearchResponse, error)
	Update(ctx context.Context, id int64, req dto.CreateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) (*model.User, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
	DeleteCheck(ctx context.Context, id int64) (*dto.DeleteCheckResponse, error)
	Rooms(ctx context.Context, id int64) ([]model.RoomAccess, error)
	ReplaceRooms(ctx context.Context, id int64, roomIDs []int64) ([]model.RoomAccess, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	u := &model.User{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		ByuID:      req.ByuID,
		NetID:      req.NetID,
		PositionID: req.PositionID,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	return s.repo.List(ctx, filter)
}

// Search runs the typeahead user search: tokens AND-combined over name and
// email, fetching limit+1 rows so hasMore needs no second count query.
// An empty query returns an empty page without touching the store.
func (s *userService) Search(ctx context.Context, q string, limit int, positionID *int64) (*dto.UserSearchResponse, error) {
	empty := &dto.UserSearchResponse{Results: []dto.UserSearchResult{}, HasMore: false}

	if strings.TrimSpace(q) == "" {
		return empty, nil
	}
	tokens := search.Tokenize(q)
	if len(tokens) == 0 {
		return empty, nil
	}

	if limit <= 0 {
		limit = searchDefaultLimit
	}
	if limit > searchMaxLimit {
		limit = searchMaxLimit
	}

	users, err := s.repo.Search(ctx, tokens, positionID, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(users) > limit
	if hasMore {
		users = users[:limit]
	}

	results := make([]dto.UserSearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, dto.UserSearchResult{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			ByuID:     u.ByuID,
			NetID:     u.NetID,
		})
	}
	return &dto.UserSearchResponse{Results: results, HasMore: hasMore}, nil
}

func (s *userService) Update(ctx context.Context, id int64, req dto.CreateUserRequest) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Email = req.Email
	u.ByuID = req.ByuID
	u.NetID = req.NetID
	u.PositionID = req.PositionID
	u.Position = nil
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// cascade nulls every foreign key held against the given users and removes
// their room access, strictly before deleting the user rows themselves. It
// must run inside a single transaction scope.
func cascade(tx repository.UserTx, ids []int64) (int64, error) {
	if err := tx.ClearLockerOwners(ids); err != nil {
		return 0, err
	}
	if err := tx.ClearKeyOwners(ids); err != nil {
		return 0, err
	}
	if err := tx.ClearDeskStudents(ids); err != nil {
		return 0, err
	}
	if err := tx.ClearDeskProfessors(ids); err != nil {
		return 0, err
	}
	if err := tx.DeleteRoomAccess(ids); err != nil {
		return 0, err
	}
	return tx.DeleteUsers(ids)
}

// Delete removes a single user. The existence check runs inside the
// transaction so a vanished user aborts with not-found and no side effects.
func (s *userService) Delete(ctx context.Context, id int64) (*model.User, error) {
	var deleted *model.User
	err := s.repo.InTx(ctx, func(tx repository.UserTx) error {
		u, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		if _, err := cascade(tx, []int64{id}); err != nil {
			return err
		}
		deleted = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// BulkDelete removes every existing user in ids and reports how many were
// actually deleted; absent ids contribute nothing.
func (s *userService) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := s.repo.InTx(ctx, func(tx repository.UserTx) error {
		n, err := cascade(tx, ids)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *userService) DeleteCheck(ctx context.Context, id int64) (*dto.DeleteCheckResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	d, err := s.repo.Dependents(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteCheckResponse{
		// Deletion is always permitted for now; the check is advisory only.
		CanDelete:        true,
		Lockers:          d.Lockers,
		Keys:             d.Keys,
		DesksAsStudent:   d.StudentDesks,
		DesksAsProfessor: d.ProfessorDesks,
		RoomAccessCount:  d.RoomAccess,
	}, nil
}

func (s *userService) Rooms(ctx context.Context, id int64) ([]model.RoomAccess, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListRooms(ctx, id)
}

func (s *userService) ReplaceRooms(ctx context.Context, id int64, roomIDs []int64) ([]model.RoomAccess, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceRooms(ctx, id, roomIDs); err != nil {
		return nil, err
	}
	return s.repo.ListRooms(ctx, id)
}
