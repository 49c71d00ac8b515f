package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SwappableSlotView is a slot offered by another user, enriched with the
// owner's display identity.
type SwappableSlotView struct {
	SlotView
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

type SwapRequestView struct {
	ID                 uuid.UUID `json:"id"`
	RequesterID        uuid.UUID `json:"requester_id"`
	RequesterSlotID    uuid.UUID `json:"requester_slot_id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	OwnerSlotID        uuid.UUID `json:"owner_slot_id"`
	Status             string    `json:"status"`
	RequesterSlotTitle string    `json:"requester_slot_title"`
	RequesterStart     time.Time `json:"requester_start"`
	RequesterEnd       time.Time `json:"requester_end"`
	OwnerSlotTitle     string    `json:"owner_slot_title"`
	OwnerStart         time.Time `json:"owner_start"`
	OwnerEnd           time.Time `json:"owner_end"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IncomingSwapView enriches a request with the requester's identity for the
// recipient's inbox.
type IncomingSwapView struct {
	SwapRequestView
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
}

// OutgoingSwapView enriches a request with the recipient's identity for the
// requester's outbox.
type OutgoingSwapView struct {
	SwapRequestView
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
