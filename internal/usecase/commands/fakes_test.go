//go:build unit

package commands_test

import (
	"context"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"
	"slotswapper/internal/domain/user"
	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

type fakeUser struct {
	id    uuid.UUID
	name  string
	email string
	hash  string
}

type fakeJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

// fakeState is a map-backed stand-in for the record store, shared between the
// fake unit of work and the fake read stores so command tests observe their
// own writes.
type fakeState struct {
	users map[uuid.UUID]*fakeUser
	slots map[uuid.UUID]*shared.SlotSnapshot
	swaps map[uuid.UUID]*shared.SwapRequestSnapshot
	jobs  []fakeJob
}

func newFakeState() *fakeState {
	return &fakeState{
		users: make(map[uuid.UUID]*fakeUser),
		slots: make(map[uuid.UUID]*shared.SlotSnapshot),
		swaps: make(map[uuid.UUID]*shared.SwapRequestSnapshot),
	}
}

func (s *fakeState) addUser(name, email string) uuid.UUID {
	id := uuid.New()
	s.users[id] = &fakeUser{id: id, name: name, email: email}
	return id
}

func (s *fakeState) addSlot(userID uuid.UUID, title string, status slot.Status) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.slots[id] = &shared.SlotSnapshot{
		ID:        id,
		UserID:    userID,
		Title:     title,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id
}

type fakeUoW struct {
	state *fakeState
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) WithDB(_ context.Context, _ func(ctx context.Context, db db.DBTX) error) error {
	panic("not used in command tests")
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Slots() shared.SlotRepository                 { return &fakeSlotRepo{state: t.state} }
func (t *fakeTx) Swaps() shared.SwapRepository                 { return &fakeSwapRepo{state: t.state} }
func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUserRepo{state: t.state} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotifyRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                                  { panic("not used in command tests") }

type fakeSlotRepo struct {
	state *fakeState
}

func (r *fakeSlotRepo) Create(_ context.Context, s *slot.Slot) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	r.state.slots[id] = &shared.SlotSnapshot{
		ID:        id,
		UserID:    s.UserID(),
		Title:     s.Title(),
		StartTime: s.StartTime(),
		EndTime:   s.EndTime(),
		Status:    s.Status(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (r *fakeSlotRepo) Update(_ context.Context, id uuid.UUID, patch shared.SlotPatch) error {
	snap, ok := r.state.slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	if patch.Title != nil {
		snap.Title = *patch.Title
	}
	if patch.StartTime != nil {
		snap.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		snap.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		snap.Status = *patch.Status
	}
	snap.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.slots[id]; !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	delete(r.state.slots, id)
	return nil
}

func (r *fakeSlotRepo) SetStatus(_ context.Context, id uuid.UUID, status slot.Status) error {
	snap, ok := r.state.slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	snap.Status = status
	snap.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSlotRepo) SetOwnerAndStatus(_ context.Context, id, ownerID uuid.UUID, status slot.Status) error {
	snap, ok := r.state.slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	snap.UserID = ownerID
	snap.Status = status
	snap.UpdatedAt = time.Now()
	return nil
}

type fakeSwapRepo struct {
	state *fakeState
}

func (r *fakeSwapRepo) Create(_ context.Context, req *swap.Request) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	r.state.swaps[id] = &shared.SwapRequestSnapshot{
		ID:              id,
		RequesterID:     req.RequesterID(),
		RequesterSlotID: req.RequesterSlotID(),
		OwnerID:         req.OwnerID(),
		OwnerSlotID:     req.OwnerSlotID(),
		Status:          req.Status(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return id, nil
}

func (r *fakeSwapRepo) SetStatus(_ context.Context, id uuid.UUID, status swap.Status) error {
	snap, ok := r.state.swaps[id]
	if !ok {
		return infra.WrapRepoErr("swap request not found", nil, infra.KindNotFound)
	}
	snap.Status = status
	snap.UpdatedAt = time.Now()
	return nil
}

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.state.users {
		if existing.email == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.state.users[id] = &fakeUser{id: id, name: u.Name(), email: u.Email().Value(), hash: u.PasswordHash()}
	return id, nil
}

type fakeNotifyRepo struct {
	state *fakeState
}

func (r *fakeNotifyRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.state.jobs = append(r.state.jobs, fakeJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) SlotByID(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	snap, ok := r.state.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) SwapRequestByID(_ context.Context, id uuid.UUID) (*shared.SwapRequestSnapshot, error) {
	snap, ok := r.state.swaps[id]
	if !ok {
		return nil, infra.WrapRepoErr("swap request not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

type fakeUserReadStore struct {
	state *fakeState
}

func (r *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.UserView, string, error) {
	for _, u := range r.state.users {
		if u.email == email {
			return &queries.UserView{ID: u.id, Name: u.name, Email: u.email}, u.hash, nil
		}
	}
	return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, ok := r.state.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &queries.UserView{ID: u.id, Name: u.name, Email: u.email}, nil
}

type fakeSlotReadStore struct {
	state *fakeState
}

func (r *fakeSlotReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.SlotView, error) {
	snap, ok := r.state.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return slotViewFromSnapshot(snap), nil
}

func (r *fakeSlotReadStore) ListByOwner(_ context.Context, userID uuid.UUID) ([]*queries.SlotView, error) {
	views := make([]*queries.SlotView, 0)
	for _, snap := range r.state.slots {
		if snap.UserID == userID {
			views = append(views, slotViewFromSnapshot(snap))
		}
	}
	return views, nil
}

func (r *fakeSlotReadStore) ListSwappableExcept(_ context.Context, userID uuid.UUID) ([]*queries.SwappableSlotView, error) {
	views := make([]*queries.SwappableSlotView, 0)
	for _, snap := range r.state.slots {
		if snap.Status == slot.StatusSwappable && snap.UserID != userID {
			v := &queries.SwappableSlotView{SlotView: *slotViewFromSnapshot(snap)}
			if owner, ok := r.state.users[snap.UserID]; ok {
				v.OwnerName = owner.name
				v.OwnerEmail = owner.email
			}
			views = append(views, v)
		}
	}
	return views, nil
}

type fakeSwapReadStore struct {
	state *fakeState
}

func (r *fakeSwapReadStore) FindViewByID(_ context.Context, id uuid.UUID) (*queries.SwapRequestView, error) {
	snap, ok := r.state.swaps[id]
	if !ok {
		return nil, infra.WrapRepoErr("swap request not found", nil, infra.KindNotFound)
	}
	return r.buildView(snap), nil
}

func (r *fakeSwapReadStore) ListIncoming(_ context.Context, ownerID uuid.UUID) ([]*queries.IncomingSwapView, error) {
	views := make([]*queries.IncomingSwapView, 0)
	for _, snap := range r.state.swaps {
		if snap.OwnerID == ownerID {
			views = append(views, &queries.IncomingSwapView{SwapRequestView: *r.buildView(snap)})
		}
	}
	return views, nil
}

func (r *fakeSwapReadStore) ListOutgoing(_ context.Context, requesterID uuid.UUID) ([]*queries.OutgoingSwapView, error) {
	views := make([]*queries.OutgoingSwapView, 0)
	for _, snap := range r.state.swaps {
		if snap.RequesterID == requesterID {
			views = append(views, &queries.OutgoingSwapView{SwapRequestView: *r.buildView(snap)})
		}
	}
	return views, nil
}

func (r *fakeSwapReadStore) buildView(snap *shared.SwapRequestSnapshot) *queries.SwapRequestView {
	v := &queries.SwapRequestView{
		ID:              snap.ID,
		RequesterID:     snap.RequesterID,
		RequesterSlotID: snap.RequesterSlotID,
		OwnerID:         snap.OwnerID,
		OwnerSlotID:     snap.OwnerSlotID,
		Status:          string(snap.Status),
		CreatedAt:       snap.CreatedAt,
		UpdatedAt:       snap.UpdatedAt,
	}
	if s, ok := r.state.slots[snap.RequesterSlotID]; ok {
		v.RequesterSlotTitle = s.Title
		v.RequesterStart = s.StartTime
		v.RequesterEnd = s.EndTime
	}
	if s, ok := r.state.slots[snap.OwnerSlotID]; ok {
		v.OwnerSlotTitle = s.Title
		v.OwnerStart = s.StartTime
		v.OwnerEnd = s.EndTime
	}
	return v
}

func slotViewFromSnapshot(snap *shared.SlotSnapshot) *queries.SlotView {
	return &queries.SlotView{
		ID:        snap.ID,
		UserID:    snap.UserID,
		Title:     snap.Title,
		StartTime: snap.StartTime,
		EndTime:   snap.EndTime,
		Status:    string(snap.Status),
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
}
