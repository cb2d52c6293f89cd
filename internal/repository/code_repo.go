package repository

import (
	"context"

	"deptdash/internal/model"

	"gorm.io/gorm"
)

type CodeRepository interface {
	Create(ctx context.Context, c *model.Code) error
	List(ctx context.Context) ([]model.Code, error)
	Update(ctx context.Context, c *model.Code) error
	Delete(ctx context.Context, id int64) (*model.Code, error)
}

type codeRepo struct{ db *gorm.DB }

func NewCodeRepository(db *gorm.DB) CodeRepository { return &codeRepo{db: db} }

func (r *codeRepo) Create(ctx context.Context, c *model.Code) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *codeRepo) List(ctx context.Context) ([]model.Code, error) {
	var codes []model.Code
	err := r.db.WithContext(ctx).Order("id ASC").Find(&codes).Error
	return codes, err
}

func (r *codeRepo) Update(ctx context.Context, c *model.Code) error {
	res := r.db.WithContext(ctx).Model(&model.Code{}).Where("id = ?", c.ID).
		Updates(map[string]interface{}{"value": c.Value, "is_global": c.IsGlobal})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *codeRepo) Delete(ctx context.Context, id int64) (*model.Code, error) {
	var c model.Code
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Code{}, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
