package service

import (
	"context"
	"errors"
	"testing"

	"deptdash/internal/dto"
	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory LockerRepository stub ──────────────────────────────────────────

type stubLockerRepo struct {
	lockers map[int64]*model.Locker
}

var _ repository.LockerRepository = (*stubLockerRepo)(nil)

func newStubLockerRepo() *stubLockerRepo {
	return &stubLockerRepo{lockers: make(map[int64]*model.Locker)}
}

func (r *stubLockerRepo) Create(_ context.Context, l *model.Locker) error {
	if _, ok := r.lockers[l.Number]; ok {
		return gorm.ErrDuplicatedKey
	}
	if l.UserID != nil {
		for _, existing := range r.lockers {
			if existing.UserID != nil && *existing.UserID == *l.UserID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	cp := *l
	r.lockers[l.Number] = &cp
	return nil
}

func (r *stubLockerRepo) FindByNumber(_ context.Context, number int64) (*model.Locker, error) {
	l, ok := r.lockers[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *stubLockerRepo) FindByUserID(_ context.Context, userID int64) (*model.Locker, error) {
	for _, l := range r.lockers {
		if l.UserID != nil && *l.UserID == userID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLockerRepo) List(_ context.Context, _ string) ([]model.Locker, error) {
	out := make([]model.Locker, 0, len(r.lockers))
	for _, l := range r.lockers {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLockerRepo) Update(_ context.Context, l *model.Locker) error {
	if _, ok := r.lockers[l.Number]; !ok {
		return gorm.ErrRecordNotFound
	}
	if l.UserID != nil {
		for number, existing := range r.lockers {
			if number != l.Number && existing.UserID != nil && *existing.UserID == *l.UserID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	cp := *l
	r.lockers[l.Number] = &cp
	return nil
}

func (r *stubLockerRepo) Delete(_ context.Context, number int64) (*model.Locker, error) {
	l, ok := r.lockers[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(r.lockers, number)
	return l, nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLockerCreateDuplicateNumber(t *testing.T) {
	repo := newStubLockerRepo()
	svc := NewLockerService(repo)

	_, err := svc.Create(context.Background(), dto.CreateLockerRequest{Number: 12})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateLockerRequest{Number: 12})
	var conflict *Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "LOCKER_ALREADY_EXISTS", conflict.Code)
}

func TestLockerCreateUserAlreadyHoldsOne(t *testing.T) {
	repo := newStubLockerRepo()
	svc := NewLockerService(repo)

	_, err := svc.Create(context.Background(), dto.CreateLockerRequest{Number: 12, UserID: ptr(7)})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateLockerRequest{Number: 13, UserID: ptr(7)})
	var conflict *Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "USER_ALREADY_HAS_LOCKER", conflict.Code)
}

func TestLockerUpdateReassignsOwner(t *testing.T) {
	repo := newStubLockerRepo()
	svc := NewLockerService(repo)

	_, err := svc.Create(context.Background(), dto.CreateLockerRequest{Number: 12, UserID: ptr(7)})
	require.NoError(t, err)

	// Updating the same locker with the same owner is not a conflict.
	l, err := svc.Update(context.Background(), 12, dto.UpdateLockerRequest{UserID: ptr(7)})
	require.NoError(t, err)
	require.NotNil(t, l.UserID)
	assert.Equal(t, int64(7), *l.UserID)

	// Clearing the owner writes NULL.
	l, err = svc.Update(context.Background(), 12, dto.UpdateLockerRequest{})
	require.NoError(t, err)
	assert.Nil(t, l.UserID)
}

func TestLockerUpdateConflictsWithOtherLocker(t *testing.T) {
	repo := newStubLockerRepo()
	svc := NewLockerService(repo)

	_, err := svc.Create(context.Background(), dto.CreateLockerRequest{Number: 12, UserID: ptr(7)})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), dto.CreateLockerRequest{Number: 13})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 13, dto.UpdateLockerRequest{UserID: ptr(7)})
	var conflict *Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "USER_ALREADY_HAS_LOCKER", conflict.Code)
}

func TestLockerUpdateUnknownNumber(t *testing.T) {
	repo := newStubLockerRepo()
	svc := NewLockerService(repo)

	_, err := svc.Update(context.Background(), 99, dto.UpdateLockerRequest{})
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
