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

type KeyService interface {
	Create(ctx context.Context, req dto.CreateKeyRequest) (*model.Key, error)
	List(ctx context.Context, query string) ([]model.Key, error)
	GetByNumber(ctx context.Context, number int64) (*model.Key, error)
	UpdateOwner(ctx context.Context, number int64, userID *int64) (*model.Key, error)
	Delete(ctx context.Context, number int64) (*model.Key, error)
}

type keyService struct {
	repo repository.KeyRepository
}

func NewKeyService(repo repository.KeyRepository) KeyService {
	return &keyService{repo: repo}
}

func (s *keyService) Create(ctx context.Context, req dto.CreateKeyRequest) (*model.Key, error) {
	k := &model.Key{Number: req.Number, UserID: req.UserID}
	if err := s.repo.Create(ctx, k); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &Conflict{
				Code:   "KEY_ALREADY_EXISTS",
				Detail: fmt.Sprintf("Key #%d already exists.", req.Number),
			}
		}
		return nil, err
	}
	return k, nil
}

func (s *keyService) List(ctx context.Context, query string) ([]model.Key, error) {
	return s.repo.List(ctx, query)
}

func (s *keyService) GetByNumber(ctx context.Context, number int64) (*model.Key, error) {
	return s.repo.FindByNumber(ctx, number)
}

func (s *keyService) UpdateOwner(ctx context.Context, number int64, userID *int64) (*model.Key, error) {
	return s.repo.UpdateOwner(ctx, number, userID)
}

func (s *keyService) Delete(ctx context.Context, number int64) (*model.Key, error) {
	return s.repo.Delete(ctx, number)
}
