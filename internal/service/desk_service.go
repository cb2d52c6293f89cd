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

type DeskService interface {
	Create(ctx context.Context, req dto.CreateDeskRequest) (*model.Desk, error)
	List(ctx context.Context) ([]model.Desk, error)
	Update(ctx context.Context, number int64, req dto.UpdateDeskRequest) (*model.Desk, error)
	Delete(ctx context.Context, number int64) (*model.Desk, error)
}

type deskService struct {
	repo repository.DeskRepository
}

func NewDeskService(repo repository.DeskRepository) DeskService {
	return &deskService{repo: repo}
}

func (s *deskService) Create(ctx context.Context, req dto.CreateDeskRequest) (*model.Desk, error) {
	d := &model.Desk{
		Number:      req.Number,
		StudentID:   req.StudentID,
		ProfessorID: req.ProfessorID,
		StatusID:    req.StatusID,
		EndDate:     req.EndDate,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &Conflict{
				Code:   "DESK_ALREADY_EXISTS",
				Detail: fmt.Sprintf("Desk #%d already exists.", req.Number),
			}
		}
		return nil, err
	}
	return d, nil
}

func (s *deskService) List(ctx context.Context) ([]model.Desk, error) {
	return s.repo.List(ctx)
}

func (s *deskService) Update(ctx context.Context, number int64, req dto.UpdateDeskRequest) (*model.Desk, error) {
	d, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	d.StudentID = req.StudentID
	d.ProfessorID = req.ProfessorID
	d.StatusID = req.StatusID
	d.EndDate = req.EndDate
	d.Student = nil
	d.Professor = nil
	d.Status = nil
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *deskService) Delete(ctx context.Context, number int64) (*model.Desk, error) {
	return s.repo.Delete(ctx, number)
}
