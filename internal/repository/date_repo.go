package repository

import (
	"context"

	"deptdash/internal/model"

	"gorm.io/gorm"
)

type DateRepository interface {
	Create(ctx context.Context, d *model.ImportantDate) error
	List(ctx context.Context) ([]model.ImportantDate, error)
	Update(ctx context.Context, d *model.ImportantDate) error
	Delete(ctx context.Context, id int64) (*model.ImportantDate, error)
}

type dateRepo struct{ db *gorm.DB }

func NewDateRepository(db *gorm.DB) DateRepository { return &dateRepo{db: db} }

func (r *dateRepo) Create(ctx context.Context, d *model.ImportantDate) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dateRepo) List(ctx context.Context) ([]model.ImportantDate, error) {
	var dates []model.ImportantDate
	err := r.db.WithContext(ctx).Order("assigned_date ASC").Find(&dates).Error
	return dates, err
}

func (r *dateRepo) Update(ctx context.Context, d *model.ImportantDate) error {
	res := r.db.WithContext(ctx).Model(&model.ImportantDate{}).Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"description":    d.Description,
			"assigned_date":  d.AssignedDate,
			"current_option": d.CurrentOption,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *dateRepo) Delete(ctx context.Context, id int64) (*model.ImportantDate, error) {
	var d model.ImportantDate
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.ImportantDate{}, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
