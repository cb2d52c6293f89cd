package repository

import (
	"context"

	"deptdash/internal/model"

	"gorm.io/gorm"
)

type DeskRepository interface {
	Create(ctx context.Context, d *model.Desk) error
	FindByNumber(ctx context.Context, number int64) (*model.Desk, error)
	List(ctx context.Context) ([]model.Desk, error)
	Update(ctx context.Context, d *model.Desk) error
	Delete(ctx context.Context, number int64) (*model.Desk, error)
}

type deskRepo struct{ db *gorm.DB }

func NewDeskRepository(db *gorm.DB) DeskRepository { return &deskRepo{db: db} }

func (r *deskRepo) Create(ctx context.Context, d *model.Desk) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deskRepo) FindByNumber(ctx context.Context, number int64) (*model.Desk, error) {
	var d model.Desk
	err := r.db.WithContext(ctx).
		Preload("Student").Preload("Professor").Preload("Status").
		First(&d, "number = ?", number).Error
	return &d, err
}

func (r *deskRepo) List(ctx context.Context) ([]model.Desk, error) {
	var desks []model.Desk
	err := r.db.WithContext(ctx).
		Preload("Student").Preload("Professor").Preload("Status").
		Order("number ASC").Find(&desks).Error
	return desks, err
}

func (r *deskRepo) Update(ctx context.Context, d *model.Desk) error {
	return r.db.WithContext(ctx).Model(&model.Desk{}).Where("number = ?", d.Number).
		Updates(map[string]interface{}{
			"student_id":   d.StudentID,
			"professor_id": d.ProfessorID,
			"status_id":    d.StatusID,
			"end_date":     d.EndDate,
		}).Error
}

func (r *deskRepo) Delete(ctx context.Context, number int64) (*model.Desk, error) {
	d, err := r.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Desk{}, "number = ?", number).Error; err != nil {
		return nil, err
	}
	return d, nil
}
