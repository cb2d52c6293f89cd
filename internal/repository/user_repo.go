package repository

import (
	"context"
	"database/sql"

	"deptdash/internal/model"
	"deptdash/internal/search"

	"gorm.io/gorm"
)

// UserFilter narrows the full user listing.
type UserFilter struct {
	Query      string
	PositionID *int64
}

// Dependents captures everything still referencing a user, for the
// delete-check preflight.
type Dependents struct {
	Lockers        []model.Locker
	Keys           []model.Key
	StudentDesks   []model.Desk
	ProfessorDesks []model.Desk
	RoomAccess     int64
}

// UserTx is the transactional scope of the deletion cascade. All cleanup
// writes and the terminal delete run against the same store transaction;
// returning an error from any step rolls the whole cascade back.
type UserTx interface {
	FindByID(id int64) (*model.User, error)
	ClearLockerOwners(ids []int64) error
	ClearKeyOwners(ids []int64) error
	ClearDeskStudents(ids []int64) error
	ClearDeskProfessors(ids []int64) error
	DeleteRoomAccess(ids []int64) error
	DeleteUsers(ids []int64) (int64, error)
}

// UserRepository defines the data access contract for users.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, filter UserFilter) ([]model.User, error)
	Search(ctx context.Context, tokens []string, positionID *int64, limit int) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Dependents(ctx context.Context, id int64) (*Dependents, error)

	// InTx opens a serializable transaction and hands the cascade scope to fn.
	InTx(ctx context.Context, fn func(tx UserTx) error) error

	ListRooms(ctx context.Context, userID int64) ([]model.RoomAccess, error)
	ReplaceRooms(ctx context.Context, userID int64, roomIDs []int64) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Position").First(&u, id).Error
	return &u, err
}

func (r *userRepo) List(ctx context.Context, filter UserFilter) ([]model.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{}).Preload("Position")

	if tokens := search.Tokenize(filter.Query); len(tokens) > 0 {
		q = search.UserPredicate(q, r.db, tokens, search.UserListFields)
	}
	if filter.PositionID != nil {
		q = q.Where("position_id = ?", *filter.PositionID)
	}

	var users []model.User
	err := q.Order("last_name ASC, first_name ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) Search(ctx context.Context, tokens []string, positionID *int64, limit int) ([]model.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	q = search.UserPredicate(q, r.db, tokens, search.UserSearchFields)
	if positionID != nil {
		q = q.Where("position_id = ?", *positionID)
	}

	var users []model.User
	err := q.Order("last_name ASC, first_name ASC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Dependents(ctx context.Context, id int64) (*Dependents, error) {
	var d Dependents
	db := r.db.WithContext(ctx)

	if err := db.Where("user_id = ?", id).Order("number ASC").Find(&d.Lockers).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", id).Order("number ASC").Find(&d.Keys).Error; err != nil {
		return nil, err
	}
	if err := db.Where("student_id = ?", id).Order("number ASC").Find(&d.StudentDesks).Error; err != nil {
		return nil, err
	}
	if err := db.Where("professor_id = ?", id).Order("number ASC").Find(&d.ProfessorDesks).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.RoomAccess{}).Where("user_id = ?", id).Count(&d.RoomAccess).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *userRepo) InTx(ctx context.Context, fn func(tx UserTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userTx{tx: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *userRepo) ListRooms(ctx context.Context, userID int64) ([]model.RoomAccess, error) {
	var access []model.RoomAccess
	err := r.db.WithContext(ctx).Preload("Room").Where("user_id = ?", userID).
		Order("room_id ASC").Find(&access).Error
	return access, err
}

func (r *userRepo) ReplaceRooms(ctx context.Context, userID int64, roomIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.RoomAccess{}).Error; err != nil {
			return err
		}
		if len(roomIDs) == 0 {
			return nil
		}
		access := make([]model.RoomAccess, 0, len(roomIDs))
		for _, roomID := range roomIDs {
			access = append(access, model.RoomAccess{UserID: userID, RoomID: roomID})
		}
		return tx.Create(&access).Error
	})
}

// userTx implements the cascade steps against a live transaction.
type userTx struct{ tx *gorm.DB }

func (t *userTx) FindByID(id int64) (*model.User, error) {
	var u model.User
	err := t.tx.First(&u, id).Error
	return &u, err
}

func (t *userTx) ClearLockerOwners(ids []int64) error {
	return t.tx.Model(&model.Locker{}).Where("user_id IN ?", ids).
		Update("user_id", nil).Error
}

func (t *userTx) ClearKeyOwners(ids []int64) error {
	return t.tx.Model(&model.Key{}).Where("user_id IN ?", ids).
		Update("user_id", nil).Error
}

func (t *userTx) ClearDeskStudents(ids []int64) error {
	return t.tx.Model(&model.Desk{}).Where("student_id IN ?", ids).
		Update("student_id", nil).Error
}

func (t *userTx) ClearDeskProfessors(ids []int64) error {
	return t.tx.Model(&model.Desk{}).Where("professor_id IN ?", ids).
		Update("professor_id", nil).Error
}

func (t *userTx) DeleteRoomAccess(ids []int64) error {
	return t.tx.Where("user_id IN ?", ids).Delete(&model.RoomAccess{}).Error
}

func (t *userTx) DeleteUsers(ids []int64) (int64, error) {
	res := t.tx.Where("id IN ?", ids).Delete(&model.User{})
	return res.RowsAffected, res.Error
}
