package repository

import (
	"context"

	"deptdash/internal/model"

	"gorm.io/gorm"
)

type PositionRepository interface {
	Create(ctx context.Context, p *model.Position) error
	List(ctx context.Context) ([]model.Position, error)
	Update(ctx context.Context, p *model.Position) error
	Delete(ctx context.Context, id int64) (*model.Position, error)
}

type positionRepo struct{ db *gorm.DB }

func NewPositionRepository(db *gorm.DB) PositionRepository { return &positionRepo{db: db} }

func (r *positionRepo) Create(ctx context.Context, p *model.Position) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *positionRepo) List(ctx context.Context) ([]model.Position, error) {
	var positions []model.Position
	err := r.db.WithContext(ctx).Order("description ASC").Find(&positions).Error
	return positions, err
}

func (r *positionRepo) Update(ctx context.Context, p *model.Position) error {
	res := r.db.WithContext(ctx).Model(&model.Position{}).Where("id = ?", p.ID).
		Update("description", p.Description)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *positionRepo) Delete(ctx context.Context, id int64) (*model.Position, error) {
	var p model.Position
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Position{}, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
