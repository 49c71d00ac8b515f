package slot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrInvalidStatus = errors.New("invalid slot status")
	ErrLockedForSwap = errors.New("slot is locked by a pending swap")
	ErrNotSwappable  = errors.New("slot is not swappable")
)

// Slot is a user's calendar time block, the unit of ownership a swap
// exchanges.
type Slot struct {
	id        uuid.UUID
	userID    uuid.UUID
	title     string
	startTime time.Time
	endTime   time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(userID uuid.UUID, title string, startTime, endTime time.Time, status Status) (*Slot, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if status == "" {
		status = StatusBusy
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Slot{
		id:        uuid.New(),
		userID:    userID,
		title:     title,
		startTime: startTime,
		endTime:   endTime,
		status:    status,
	}, nil
}

func ReconstructSlot(
	id, userID uuid.UUID,
	title string,
	startTime, endTime time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:        id,
		userID:    userID,
		title:     title,
		startTime: startTime,
		endTime:   endTime,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// EnsureEditable rejects direct edits and deletes while the slot is locked
// by an undecided swap.
func (s *Slot) EnsureEditable() error {
	if s.status == StatusSwapPending {
		return ErrLockedForSwap
	}
	return nil
}

// EnsureSwappable rejects swap proposals unless the slot is currently
// offered for exchange.
func (s *Slot) EnsureSwappable() error {
	if s.status != StatusSwappable {
		return ErrNotSwappable
	}
	return nil
}

func (s *Slot) IsOwnedBy(userID uuid.UUID) bool {
	return s.userID == userID
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) UserID() uuid.UUID    { return s.userID }
func (s *Slot) Title() string        { return s.title }
func (s *Slot) StartTime() time.Time { return s.startTime }
func (s *Slot) EndTime() time.Time   { return s.endTime }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
