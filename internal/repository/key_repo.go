package repository

import (
	"context"

	"deptdash/internal/model"
	"deptdash/internal/search"

	"gorm.io/gorm"
)

type KeyRepository interface {
	Create(ctx context.Context, k *model.Key) error
	FindByNumber(ctx context.Context, number int64) (*model.Key, error)
	List(ctx context.Context, query string) ([]model.Key, error)
	UpdateOwner(ctx context.Context, number int64, userID *int64) (*model.Key, error)
	Delete(ctx context.Context, number int64) (*model.Key, error)
}

type keyRepo struct{ db *gorm.DB }

func NewKeyRepository(db *gorm.DB) KeyRepository { return &keyRepo{db: db} }

func (r *keyRepo) Create(ctx context.Context, k *model.Key) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *keyRepo) FindByNumber(ctx context.Context, number int64) (*model.Key, error) {
	var k model.Key
	err := r.db.WithContext(ctx).Preload("User").First(&k, "number = ?", number).Error
	return &k, err
}

func (r *keyRepo) List(ctx context.Context, query string) ([]model.Key, error) {
	q := r.db.WithContext(ctx).Model(&model.Key{}).Preload("User")
	q = search.OwnedByNumber(q, r.db, "number", query)

	var keys []model.Key
	err := q.Order("number ASC").Find(&keys).Error
	return keys, err
}

func (r *keyRepo) UpdateOwner(ctx context.Context, number int64, userID *int64) (*model.Key, error) {
	k, err := r.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Key{}).Where("number = ?", number).
		Update("user_id", userID).Error; err != nil {
		return nil, err
	}
	k.UserID = userID
	k.User = nil
	return k, nil
}

func (r *keyRepo) Delete(ctx context.Context, number int64) (*model.Key, error) {
	k, err := r.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Key{}, "number = ?", number).Error; err != nil {
		return nil, err
	}
	return k, nil
}
