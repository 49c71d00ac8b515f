package queries

import (
	"context"

	"github.com/google/uuid"
)

type SwapReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error)
	ListIncoming(ctx context.Context, ownerID uuid.UUID) ([]*IncomingSwapView, error)
	ListOutgoing(ctx context.Context, requesterID uuid.UUID) ([]*OutgoingSwapView, error)
}

type SwapQueries interface {
	// Incoming lists requests where the user is the recipient, newest first.
	Incoming(ctx context.Context, userID uuid.UUID) ([]*IncomingSwapView, error)
	// Outgoing lists requests the user initiated, newest first.
	Outgoing(ctx context.Context, userID uuid.UUID) ([]*OutgoingSwapView, error)
}

type swapQueriesImpl struct {
	store SwapReadStore
}

func NewSwapQueries(store SwapReadStore) SwapQueries {
	return &swapQueriesImpl{store: store}
}

func (q *swapQueriesImpl) Incoming(ctx context.Context, userID uuid.UUID) ([]*IncomingSwapView, error) {
	return q.store.ListIncoming(ctx, userID)
}

func (q *swapQueriesImpl) Outgoing(ctx context.Context, userID uuid.UUID) ([]*OutgoingSwapView, error) {
	return q.store.ListOutgoing(ctx, userID)
}
