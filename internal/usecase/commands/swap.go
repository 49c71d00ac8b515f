package commands

import (
	"context"
	"encoding/json"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"
	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/clock"
	"slotswapper/internal/pkg/errs"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotSwappable   = errs.New("slot is not offered for swapping")
	ErrSelfSwap           = errs.New("cannot swap with yourself")
	ErrRequestNotFound    = errs.New("swap request not found")
	ErrNotRequestOwner    = errs.New("only the request recipient may respond")
	ErrRequestAlreadyDone = errs.New("swap request already processed")
)

const (
	notifySwapProposed = "swap.proposed"
	notifySwapAccepted = "swap.accepted"
	notifySwapRejected = "swap.rejected"
)

type SwapCommands interface {
	// Propose locks both slots and opens a PENDING request, atomically.
	Propose(ctx context.Context, requesterID, mySlotID, theirSlotID uuid.UUID) (*queries.SwapRequestView, error)
	// Respond settles a pending request. Accepting exchanges slot ownership;
	// either outcome releases the SWAP_PENDING lock on both slots.
	Respond(ctx context.Context, responderID, requestID uuid.UUID, accept bool) (*queries.SwapRequestView, error)
}

type swapCommandsImpl struct {
	uow       shared.UnitOfWork
	swapReads queries.SwapReadStore
	clock     clock.Clock
}

func NewSwapCommands(uow shared.UnitOfWork, swapReads queries.SwapReadStore, clk clock.Clock) SwapCommands {
	return &swapCommandsImpl{uow: uow, swapReads: swapReads, clock: clk}
}

func (c *swapCommandsImpl) Propose(ctx context.Context, requesterID, mySlotID, theirSlotID uuid.UUID) (*queries.SwapRequestView, error) {
	var requestID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mine, err := loadSlot(ctx, tx, mySlotID)
		if err != nil {
			return err
		}
		if !mine.IsOwnedBy(requesterID) {
			return ErrSlotNotFound
		}
		if err := mine.EnsureSwappable(); err != nil {
			return errs.Mark(err, ErrSlotNotSwappable)
		}

		theirs, err := loadSlot(ctx, tx, theirSlotID)
		if err != nil {
			return err
		}
		if err := theirs.EnsureSwappable(); err != nil {
			return errs.Mark(err, ErrSlotNotSwappable)
		}

		req, err := swap.NewRequest(requesterID, mine.ID(), theirs.UserID(), theirs.ID())
		if err != nil {
			return errs.Mark(err, ErrSelfSwap)
		}

		if err := tx.Slots().SetStatus(ctx, mine.ID(), slot.StatusSwapPending); err != nil {
			return err
		}
		if err := tx.Slots().SetStatus(ctx, theirs.ID(), slot.StatusSwapPending); err != nil {
			return err
		}

		id, err := tx.Swaps().Create(ctx, req)
		if err != nil {
			return err
		}
		requestID = id

		return c.enqueueSwapEvent(ctx, tx, notifySwapProposed, req.OwnerID(), id)
	})
	if err != nil {
		return nil, markUnlessKnown(err, ErrSlotNotFound, ErrSlotNotSwappable, ErrSelfSwap)
	}

	return c.findView(ctx, requestID)
}

func (c *swapCommandsImpl) Respond(ctx context.Context, responderID, requestID uuid.UUID, accept bool) (*queries.SwapRequestView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SwapRequestByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRequestNotFound)
			}
			return err
		}

		req := swap.ReconstructRequest(
			snap.ID, snap.RequesterID, snap.RequesterSlotID,
			snap.OwnerID, snap.OwnerSlotID,
			snap.Status, snap.CreatedAt, snap.UpdatedAt,
		)
		decided, err := req.Decide(responderID, accept)
		if err != nil {
			switch err {
			case swap.ErrNotRecipient:
				return errs.Mark(err, ErrNotRequestOwner)
			default:
				return errs.Mark(err, ErrRequestAlreadyDone)
			}
		}

		if decided == swap.StatusAccepted {
			// Ownership crosses over and both slots return to the
			// non-swappable calendar.
			if err := tx.Slots().SetOwnerAndStatus(ctx, req.RequesterSlotID(), req.OwnerID(), slot.StatusBusy); err != nil {
				return err
			}
			if err := tx.Slots().SetOwnerAndStatus(ctx, req.OwnerSlotID(), req.RequesterID(), slot.StatusBusy); err != nil {
				return err
			}
		} else {
			if err := tx.Slots().SetStatus(ctx, req.RequesterSlotID(), slot.StatusSwappable); err != nil {
				return err
			}
			if err := tx.Slots().SetStatus(ctx, req.OwnerSlotID(), slot.StatusSwappable); err != nil {
				return err
			}
		}

		if err := tx.Swaps().SetStatus(ctx, requestID, decided); err != nil {
			return err
		}

		kind := notifySwapRejected
		if decided == swap.StatusAccepted {
			kind = notifySwapAccepted
		}
		return c.enqueueSwapEvent(ctx, tx, kind, req.RequesterID(), requestID)
	})
	if err != nil {
		return nil, markUnlessKnown(err, ErrRequestNotFound, ErrNotRequestOwner, ErrRequestAlreadyDone)
	}

	return c.findView(ctx, requestID)
}

func loadSlot(ctx context.Context, tx shared.Tx, slotID uuid.UUID) (*slot.Slot, error) {
	snap, err := tx.Reads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSlotNotFound)
		}
		return nil, err
	}
	return slot.ReconstructSlot(snap.ID, snap.UserID, snap.Title, snap.StartTime, snap.EndTime, snap.Status, snap.CreatedAt, snap.UpdatedAt), nil
}

// enqueueSwapEvent records an outbox job in the same transaction as the state
// change so notifications are never emitted for rolled-back swaps.
func (c *swapCommandsImpl) enqueueSwapEvent(ctx context.Context, tx shared.Tx, kind string, recipientID, requestID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"request_id":   requestID.String(),
		"recipient_id": recipientID.String(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, kind, "swap", payload, c.clock.Now())
}

func (c *swapCommandsImpl) findView(ctx context.Context, requestID uuid.UUID) (*queries.SwapRequestView, error) {
	view, err := c.swapReads.FindViewByID(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
