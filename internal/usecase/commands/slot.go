package commands

import (
	"context"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/errs"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound      = errs.New("slot not found")
	ErrSlotLocked        = errs.New("slot is locked by a pending swap")
	ErrInvalidSlotInput  = errs.New("invalid slot input")
	ErrNoFieldsToUpdate  = errs.New("no fields to update")
	ErrInvalidSlotStatus = errs.New("invalid slot status")
)

type SlotCommands interface {
	Create(ctx context.Context, userID uuid.UUID, title string, startTime, endTime time.Time, status slot.Status) (*queries.SlotView, error)
	Update(ctx context.Context, userID, slotID uuid.UUID, patch shared.SlotPatch) (*queries.SlotView, error)
	Delete(ctx context.Context, userID, slotID uuid.UUID) error
}

type slotCommandsImpl struct {
	uow       shared.UnitOfWork
	slotReads queries.SlotReadStore
}

func NewSlotCommands(uow shared.UnitOfWork, slotReads queries.SlotReadStore) SlotCommands {
	return &slotCommandsImpl{uow: uow, slotReads: slotReads}
}

func (c *slotCommandsImpl) Create(ctx context.Context, userID uuid.UUID, title string, startTime, endTime time.Time, status slot.Status) (*queries.SlotView, error) {
	s, err := slot.NewSlot(userID, title, startTime, endTime, status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlotInput)
	}

	var slotID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Slots().Create(ctx, s)
		if err != nil {
			return err
		}
		slotID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, slotID)
}

func (c *slotCommandsImpl) Update(ctx context.Context, userID, slotID uuid.UUID, patch shared.SlotPatch) (*queries.SlotView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Existence and ownership first, so a bad patch against a slot the
		// caller cannot see still reads as not-found.
		current, err := c.loadOwned(ctx, tx, userID, slotID)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
		if patch.Status != nil && !patch.Status.DirectlySettable() {
			return ErrInvalidSlotStatus
		}
		if err := current.EnsureEditable(); err != nil {
			return errs.Mark(err, ErrSlotLocked)
		}
		return tx.Slots().Update(ctx, slotID, patch)
	})
	if err != nil {
		return nil, markUnlessKnown(err, ErrSlotNotFound, ErrSlotLocked, ErrNoFieldsToUpdate, ErrInvalidSlotStatus)
	}

	return c.findView(ctx, slotID)
}

func (c *slotCommandsImpl) Delete(ctx context.Context, userID, slotID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := c.loadOwned(ctx, tx, userID, slotID)
		if err != nil {
			return err
		}
		if err := current.EnsureEditable(); err != nil {
			return errs.Mark(err, ErrSlotLocked)
		}
		return tx.Slots().Delete(ctx, slotID)
	})
	if err != nil {
		return markUnlessKnown(err, ErrSlotNotFound, ErrSlotLocked)
	}
	return nil
}

// loadOwned fetches a slot inside the transaction and reports ErrSlotNotFound
// both for missing rows and for slots owned by someone else, so a caller
// cannot probe the existence of other users' slots.
func (c *slotCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, userID, slotID uuid.UUID) (*slot.Slot, error) {
	snap, err := tx.Reads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSlotNotFound)
		}
		return nil, err
	}

	s := slot.ReconstructSlot(snap.ID, snap.UserID, snap.Title, snap.StartTime, snap.EndTime, snap.Status, snap.CreatedAt, snap.UpdatedAt)
	if !s.IsOwnedBy(userID) {
		return nil, ErrSlotNotFound
	}
	return s, nil
}

func (c *slotCommandsImpl) findView(ctx context.Context, slotID uuid.UUID) (*queries.SlotView, error) {
	view, err := c.slotReads.FindByID(ctx, slotID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
