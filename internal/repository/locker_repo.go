package repository

import (
	"context"

	"deptdash/internal/model"
	"deptdash/internal/search"

	"gorm.io/gorm"
)

type LockerRepository interface {
	Create(ctx context.Context, l *model.Locker) error
	FindByNumber(ctx context.Context, number int64) (*model.Locker, error)
	FindByUserID(ctx context.Context, userID int64) (*model.Locker, error)
	List(ctx context.Context, query string) ([]model.Locker, error)
	Update(ctx context.Context, l *model.Locker) error
	Delete(ctx context.Context, number int64) (*model.Locker, error)
}

type lockerRepo struct{ db *gorm.DB }

func NewLockerRepository(db *gorm.DB) LockerRepository { return &lockerRepo{db: db} }

func (r *lockerRepo) Create(ctx context.Context, l *model.Locker) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lockerRepo) FindByNumber(ctx context.Context, number int64) (*model.Locker, error) {
	var l model.Locker
	err := r.db.WithContext(ctx).Preload("User").First(&l, "number = ?", number).Error
	return &l, err
}

func (r *lockerRepo) FindByUserID(ctx context.Context, userID int64) (*model.Locker, error) {
	var l model.Locker
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&l).Error
	return &l, err
}

func (r *lockerRepo) List(ctx context.Context, query string) ([]model.Locker, error) {
	q := r.db.WithContext(ctx).Model(&model.Locker{}).Preload("User")
	q = search.OwnedByNumber(q, r.db, "number", query)

	var lockers []model.Locker
	err := q.Order("number ASC").Find(&lockers).Error
	return lockers, err
}

func (r *lockerRepo) Update(ctx context.Context, l *model.Locker) error {
	// Save would skip zero-valued fields on upsert paths; Updates with a map
	// writes the nullable columns explicitly, including back to NULL.
	return r.db.WithContext(ctx).Model(&model.Locker{}).Where("number = ?", l.Number).
		Updates(map[string]interface{}{
			"user_id":    l.UserID,
			"class_name": l.ClassName,
			"end_date":   l.EndDate,
		}).Error
}

func (r *lockerRepo) Delete(ctx context.Context, number int64) (*model.Locker, error) {
	l, err := r.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Locker{}, "number = ?", number).Error; err != nil {
		return nil, err
	}
	return l, nil
}
