package repository

import (
	"context"

	"deptdash/internal/model"

	"gorm.io/gorm"
)

type StatusRepository interface {
	Create(ctx context.Context, s *model.Status) error
	List(ctx context.Context) ([]model.Status, error)
	Update(ctx context.Context, s *model.Status) error
	Delete(ctx context.Context, id int64) (*model.Status, error)
}

type statusRepo struct{ db *gorm.DB }

func NewStatusRepository(db *gorm.DB) StatusRepository { return &statusRepo{db: db} }

func (r *statusRepo) Create(ctx context.Context, s *model.Status) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *statusRepo) List(ctx context.Context) ([]model.Status, error) {
	var statuses []model.Status
	err := r.db.WithContext(ctx).Order("description ASC").Find(&statuses).Error
	return statuses, err
}

func (r *statusRepo) Update(ctx context.Context, s *model.Status) error {
	res := r.db.WithContext(ctx).Model(&model.Status{}).Where("id = ?", s.ID).
		Update("description", s.Description)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *statusRepo) Delete(ctx context.Context, id int64) (*model.Status, error) {
	var s model.Status
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Status{}, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
