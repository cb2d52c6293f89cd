package service

import (
	"context"
	"errors"
	"fmt"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"gorm.io/gorm"
)

type LockerService interface {
	Create(ctx context.Context, req dto.CreateLockerRequest) (*model.Locker, error)
	List(ctx context.Context, query string) ([]model.Locker, error)
	Update(ctx context.Context, number int64, req dto.UpdateLockerRequest) (*model.Locker, error)
	Delete(ctx context.Context, number int64) (*model.Locker, error)
}

type lockerService struct {
	repo repository.LockerRepository
}

func NewLockerService(repo repository.LockerRepository) LockerService {
	return &lockerService{repo: repo}
}

// checkOccupancy rejects assigning a locker to a user who already holds a
// different one. The unique index on lockers.user_id is the real guard; this
// pre-check exists to produce a precise conflict code instead of a generic
// duplicate-key error.
func (s *lockerService) checkOccupancy(ctx context.Context, userID int64, number int64) error {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.Number != number {
		return &Conflict{
			Code:   "USER_ALREADY_HAS_LOCKER",
			Detail: fmt.Sprintf("User already holds locker #%d.", existing.Number),
		}
	}
	return nil
}

func (s *lockerService) Create(ctx context.Context, req dto.CreateLockerRequest) (*model.Locker, error) {
	if req.UserID != nil {
		if err := s.checkOccupancy(ctx, *req.UserID, req.Number); err != nil {
			return nil, err
		}
	}
	l := &model.Locker{
		Number:    req.Number,
		UserID:    req.UserID,
		ClassName: req.ClassName,
		EndDate:   req.EndDate,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &Conflict{
				Code:   "LOCKER_ALREADY_EXISTS",
				Detail: fmt.Sprintf("Locker #%d already exists.", req.Number),
			}
		}
		return nil, err
	}
	return l, nil
}

func (s *lockerService) List(ctx context.Context, query string) ([]model.Locker, error) {
	return s.repo.List(ctx, query)
}

func (s *lockerService) Update(ctx context.Context, number int64, req dto.UpdateLockerRequest) (*model.Locker, error) {
	l, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if req.UserID != nil {
		if err := s.checkOccupancy(ctx, *req.UserID, number); err != nil {
			return nil, err
		}
	}
	l.UserID = req.UserID
	l.ClassName = req.ClassName
	l.EndDate = req.EndDate
	l.User = nil
	if err := s.repo.Update(ctx, l); err != nil {
		// The update never touches number, so a duplicate here can only be
		// a concurrent assignment racing past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &Conflict{
				Code:   "USER_ALREADY_HAS_LOCKER",
				Detail: "User already holds another locker.",
			}
		}
		return nil, err
	}
	return l, nil
}

func (s *lockerService) Delete(ctx context.Context, number int64) (*model.Locker, error) {
	return s.repo.Delete(ctx, number)
}
