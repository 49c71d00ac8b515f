package queries

import (
	"context"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*SlotView, error)
	ListSwappableExcept(ctx context.Context, userID uuid.UUID) ([]*SwappableSlotView, error)
}

type SlotQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*SlotView, error)
	// ListSwappable returns other users' SWAPPABLE slots, the board a caller
	// picks a counterpart slot from.
	ListSwappable(ctx context.Context, userID uuid.UUID) ([]*SwappableSlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*SlotView, error) {
	return q.store.ListByOwner(ctx, userID)
}

func (q *slotQueriesImpl) ListSwappable(ctx context.Context, userID uuid.UUID) ([]*SwappableSlotView, error) {
	return q.store.ListSwappableExcept(ctx, userID)
}
