package request

import (
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/usecase/shared"
)

type CreateSlotRequest struct {
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Status    *string   `json:"status,omitempty" binding:"omitempty,oneof=BUSY SWAPPABLE SWAP_PENDING"`
}

func (r CreateSlotRequest) SlotStatus() slot.Status {
	if r.Status == nil {
		return slot.StatusBusy
	}
	return slot.Status(*r.Status)
}

type UpdateSlotRequest struct {
	Title     *string    `json:"title,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	// Direct edits may only move a slot between BUSY and SWAPPABLE;
	// SWAP_PENDING is coordinator-owned.
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=BUSY SWAPPABLE"`
}

func (r UpdateSlotRequest) ToPatch() shared.SlotPatch {
	patch := shared.SlotPatch{
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
	if r.Status != nil {
		s := slot.Status(*r.Status)
		patch.Status = &s
	}
	return patch
}
