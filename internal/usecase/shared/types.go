package shared

import (
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation.

type SlotSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    slot.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SwapRequestSnapshot struct {
	ID              uuid.UUID
	RequesterID     uuid.UUID
	RequesterSlotID uuid.UUID
	OwnerID         uuid.UUID
	OwnerSlotID     uuid.UUID
	Status          swap.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SlotPatch carries the partial field updates of a direct slot edit. Nil
// fields are left untouched.
type SlotPatch struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *slot.Status
}

func (p SlotPatch) IsEmpty() bool {
	return p.Title == nil && p.StartTime == nil && p.EndTime == nil && p.Status == nil
}
