package service

import (
	"context"
	"errors"
	"testing"

	"deptdash/internal/model"
	"deptdash/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory UserRepository stub ────────────────────────────────────────────

type stubUserStore struct {
	users       map[int64]*model.User
	lockers     []*model.Locker
	keys        []*model.Key
	desks       []*model.Desk
	roomAccess  []model.RoomAccess
	searchCalls int
	searchLimit int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[int64]*model.User)}
}

type stubUserRepo struct {
	store *stubUserStore

	// failOn aborts the cascade at the named step, for rollback tests.
	failOn string
	calls  []string
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.store.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context, _ repository.UserFilter) ([]model.User, error) {
	out := make([]model.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Search(_ context.Context, _ []string, _ *int64, limit int) ([]model.User, error) {
	r.store.searchCalls++
	r.store.searchLimit = limit
	out := make([]model.User, 0, len(r.store.users))
	for id := int64(1); id <= int64(len(r.store.users)); id++ {
		if u, ok := r.store.users[id]; ok {
			out = append(out, *u)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.store.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Dependents(_ context.Context, id int64) (*repository.Dependents, error) {
	d := &repository.Dependents{
		Lockers:        []model.Locker{},
		Keys:           []model.Key{},
		StudentDesks:   []model.Desk{},
		ProfessorDesks: []model.Desk{},
	}
	for _, l := range r.store.lockers {
		if l.UserID != nil && *l.UserID == id {
			d.Lockers = append(d.Lockers, *l)
		}
	}
	for _, k := range r.store.keys {
		if k.UserID != nil && *k.UserID == id {
			d.Keys = append(d.Keys, *k)
		}
	}
	for _, dk := range r.store.desks {
		if dk.StudentID != nil && *dk.StudentID == id {
			d.StudentDesks = append(d.StudentDesks, *dk)
		}
		if dk.ProfessorID != nil && *dk.ProfessorID == id {
			d.ProfessorDesks = append(d.ProfessorDesks, *dk)
		}
	}
	for _, ra := range r.store.roomAccess {
		if ra.UserID == id {
			d.RoomAccess++
		}
	}
	return d, nil
}

// InTx snapshots the store and restores it if fn fails, mimicking a rollback.
func (r *stubUserRepo) InTx(_ context.Context, fn func(tx repository.UserTx) error) error {
	snapshot := r.snapshot()
	err := fn(&stubUserTx{repo: r})
	if err != nil {
		r.restore(snapshot)
	}
	return err
}

func (r *stubUserRepo) ListRooms(_ context.Context, userID int64) ([]model.RoomAccess, error) {
	out := []model.RoomAccess{}
	for _, ra := range r.store.roomAccess {
		if ra.UserID == userID {
			out = append(out, ra)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ReplaceRooms(_ context.Context, userID int64, roomIDs []int64) error {
	kept := r.store.roomAccess[:0]
	for _, ra := range r.store.roomAccess {
		if ra.UserID != userID {
			kept = append(kept, ra)
		}
	}
	r.store.roomAccess = kept
	for _, roomID := range roomIDs {
		r.store.roomAccess = append(r.store.roomAccess, model.RoomAccess{UserID: userID, RoomID: roomID})
	}
	return nil
}

func (r *stubUserRepo) snapshot() *stubUserStore {
	s := newStubUserStore()
	for id, u := range r.store.users {
		cp := *u
		s.users[id] = &cp
	}
	for _, l := range r.store.lockers {
		cp := *l
		s.lockers = append(s.lockers, &cp)
	}
	for _, k := range r.store.keys {
		cp := *k
		s.keys = append(s.keys, &cp)
	}
	for _, d := range r.store.desks {
		cp := *d
		s.desks = append(s.desks, &cp)
	}
	s.roomAccess = append(s.roomAccess, r.store.roomAccess...)
	return s
}

func (r *stubUserRepo) restore(s *stubUserStore) {
	s.searchCalls = r.store.searchCalls
	s.searchLimit = r.store.searchLimit
	r.store = s
}

// ── Transaction scope stub ───────────────────────────────────────────────────

type stubUserTx struct{ repo *stubUserRepo }

func (t *stubUserTx) step(name string) error {
	t.repo.calls = append(t.repo.calls, name)
	if t.repo.failOn == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (t *stubUserTx) FindByID(id int64) (*model.User, error) {
	if err := t.step("FindByID"); err != nil {
		return nil, err
	}
	u, ok := t.repo.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (t *stubUserTx) ClearLockerOwners(ids []int64) error {
	if err := t.step("ClearLockerOwners"); err != nil {
		return err
	}
	for _, l := range t.repo.store.lockers {
		if l.UserID != nil && contains(ids, *l.UserID) {
			l.UserID = nil
		}
	}
	return nil
}

func (t *stubUserTx) ClearKeyOwners(ids []int64) error {
	if err := t.step("ClearKeyOwners"); err != nil {
		return err
	}
	for _, k := range t.repo.store.keys {
		if k.UserID != nil && contains(ids, *k.UserID) {
			k.UserID = nil
		}
	}
	return nil
}

func (t *stubUserTx) ClearDeskStudents(ids []int64) error {
	if err := t.step("ClearDeskStudents"); err != nil {
		return err
	}
	for _, d := range t.repo.store.desks {
		if d.StudentID != nil && contains(ids, *d.StudentID) {
			d.StudentID = nil
		}
	}
	return nil
}

func (t *stubUserTx) ClearDeskProfessors(ids []int64) error {
	if err := t.step("ClearDeskProfessors"); err != nil {
		return err
	}
	for _, d := range t.repo.store.desks {
		if d.ProfessorID != nil && contains(ids, *d.ProfessorID) {
			d.ProfessorID = nil
		}
	}
	return nil
}

func (t *stubUserTx) DeleteRoomAccess(ids []int64) error {
	if err := t.step("DeleteRoomAccess"); err != nil {
		return err
	}
	kept := t.repo.store.roomAccess[:0]
	for _, ra := range t.repo.store.roomAccess {
		if !contains(ids, ra.UserID) {
			kept = append(kept, ra)
		}
	}
	t.repo.store.roomAccess = kept
	return nil
}

func (t *stubUserTx) DeleteUsers(ids []int64) (int64, error) {
	if err := t.step("DeleteUsers"); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range ids {
		if _, ok := t.repo.store.users[id]; ok {
			delete(t.repo.store.users, id)
			n++
		}
	}
	return n, nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func ptr(v int64) *int64 { return &v }

func seedOwnedWorld(repo *stubUserRepo) {
	repo.store.users[7] = &model.User{ID: 7, FirstName: "Jane", LastName: "Doe", Email: "jane@example.edu", PositionID: 1}
	repo.store.users[8] = &model.User{ID: 8, FirstName: "Sam", LastName: "Lee", Email: "sam@example.edu", PositionID: 2}
	repo.store.lockers = append(repo.store.lockers, &model.Locker{Number: 12, UserID: ptr(7)})
	repo.store.keys = append(repo.store.keys, &model.Key{Number: 3, UserID: ptr(7)})
	repo.store.desks = append(repo.store.desks,
		&model.Desk{Number: 5, StudentID: ptr(7), StatusID: 1},
		&model.Desk{Number: 6, ProfessorID: ptr(7), StatusID: 1},
	)
	repo.store.roomAccess = append(repo.store.roomAccess,
		model.RoomAccess{UserID: 7, RoomID: 1},
		model.RoomAccess{UserID: 7, RoomID: 2},
	)
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestSearchEmptyQuerySkipsStore(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	svc := NewUserService(repo)

	for _, q := range []string{"", "   ", "\t\n", ", ,"} {
		resp, err := svc.Search(context.Background(), q, 10, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, repo.store.searchCalls, "query %q must not hit the store", q)
		assert.False(t, resp.HasMore)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
	}
}

func TestSearchPagination(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	for i := int64(1); i <= 15; i++ {
		repo.store.users[i] = &model.User{ID: i, FirstName: "User", LastName: "Test", Email: "u@example.edu"}
	}
	svc := NewUserService(repo)

	resp, err := svc.Search(context.Background(), "test", 0, nil)
	require.NoError(t, err)
	// Default limit 10: fetches 11 rows, returns 10, reports more.
	assert.Equal(t, 11, repo.store.searchLimit)
	assert.Len(t, resp.Results, 10)
	assert.True(t, resp.HasMore)

	resp, err = svc.Search(context.Background(), "test", 20, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Results, 15)
	assert.False(t, resp.HasMore)
}

func TestSearchLimitClamped(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	svc := NewUserService(repo)

	_, err := svc.Search(context.Background(), "test", 500, nil)
	require.NoError(t, err)
	assert.Equal(t, 51, repo.store.searchLimit)
}

// ── Deletion cascade ─────────────────────────────────────────────────────────

func TestDeleteCascadeOrder(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	seedOwnedWorld(repo)
	svc := NewUserService(repo)

	deleted, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted.ID)

	assert.Equal(t, []string{
		"FindByID",
		"ClearLockerOwners",
		"ClearKeyOwners",
		"ClearDeskStudents",
		"ClearDeskProfessors",
		"DeleteRoomAccess",
		"DeleteUsers",
	}, repo.calls)

	_, ok := repo.store.users[7]
	assert.False(t, ok)
	assert.Nil(t, repo.store.lockers[0].UserID)
	assert.Nil(t, repo.store.keys[0].UserID)
	assert.Nil(t, repo.store.desks[0].StudentID)
	assert.Nil(t, repo.store.desks[1].ProfessorID)
	assert.Empty(t, repo.store.roomAccess)
}

func TestDeleteNotFoundHasNoSideEffects(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	seedOwnedWorld(repo)
	svc := NewUserService(repo)

	_, err := svc.Delete(context.Background(), 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Only the existence check ran; nothing was cleared.
	assert.Equal(t, []string{"FindByID"}, repo.calls)
	assert.NotNil(t, repo.store.lockers[0].UserID)
	assert.NotNil(t, repo.store.keys[0].UserID)
	assert.Len(t, repo.store.roomAccess, 2)
}

func TestDeleteRollsBackOnFailure(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore(), failOn: "DeleteRoomAccess"}
	seedOwnedWorld(repo)
	svc := NewUserService(repo)

	_, err := svc.Delete(context.Background(), 7)
	require.Error(t, err)

	// Earlier steps ran but were rolled back with the transaction.
	assert.Contains(t, repo.calls, "ClearLockerOwners")
	assert.NotNil(t, repo.store.lockers[0].UserID)
	assert.NotNil(t, repo.store.keys[0].UserID)
	assert.NotNil(t, repo.store.desks[0].StudentID)
	assert.Len(t, repo.store.roomAccess, 2)
	_, ok := repo.store.users[7]
	assert.True(t, ok)
}

func TestBulkDeleteCountsOnlyExisting(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	seedOwnedWorld(repo)
	svc := NewUserService(repo)

	n, err := svc.BulkDelete(context.Background(), []int64{7, 8, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Empty(t, repo.store.users)
}

func TestBulkDeleteEmptySkipsTransaction(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	svc := NewUserService(repo)

	n, err := svc.BulkDelete(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, repo.calls)
}

// ── Delete check ─────────────────────────────────────────────────────────────

func TestDeleteCheckReportsDependents(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	seedOwnedWorld(repo)
	svc := NewUserService(repo)

	resp, err := svc.DeleteCheck(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, resp.CanDelete)
	assert.Len(t, resp.Lockers, 1)
	assert.Len(t, resp.Keys, 1)
	assert.Len(t, resp.DesksAsStudent, 1)
	assert.Len(t, resp.DesksAsProfessor, 1)
	assert.Equal(t, int64(2), resp.RoomAccessCount)
}

func TestDeleteCheckUnknownUser(t *testing.T) {
	repo := &stubUserRepo{store: newStubUserStore()}
	svc := NewUserService(repo)

	_, err := svc.DeleteCheck(context.Background(), 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
