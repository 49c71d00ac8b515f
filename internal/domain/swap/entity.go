package swap

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfSwap         = errors.New("cannot swap with your own slot")
	ErrSameSlot         = errors.New("requester and owner slots must be distinct")
	ErrAlreadyResponded = errors.New("swap request already processed")
	ErrNotRecipient     = errors.New("only the request owner may respond")
)

// Request is a proposal to exchange ownership of two slots between two
// users. The owner side is derived from the target slot's owner at creation
// time and is the only party allowed to respond.
type Request struct {
	id              uuid.UUID
	requesterID     uuid.UUID
	requesterSlotID uuid.UUID
	ownerID         uuid.UUID
	ownerSlotID     uuid.UUID
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRequest(requesterID, requesterSlotID, ownerID, ownerSlotID uuid.UUID) (*Request, error) {
	if requesterID == ownerID {
		return nil, ErrSelfSwap
	}
	if requesterSlotID == ownerSlotID {
		return nil, ErrSameSlot
	}

	return &Request{
		id:              uuid.New(),
		requesterID:     requesterID,
		requesterSlotID: requesterSlotID,
		ownerID:         ownerID,
		ownerSlotID:     ownerSlotID,
		status:          StatusPending,
	}, nil
}

func ReconstructRequest(
	id, requesterID, requesterSlotID, ownerID, ownerSlotID uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		requesterID:     requesterID,
		requesterSlotID: requesterSlotID,
		ownerID:         ownerID,
		ownerSlotID:     ownerSlotID,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Decide validates that responderID may settle this request and returns the
// terminal status the request transitions to. The request itself is not
// mutated; persistence applies the transition atomically with the slot
// updates.
func (r *Request) Decide(responderID uuid.UUID, accept bool) (Status, error) {
	if r.ownerID != responderID {
		return "", ErrNotRecipient
	}
	if r.status != StatusPending {
		return "", ErrAlreadyResponded
	}
	if accept {
		return StatusAccepted, nil
	}
	return StatusRejected, nil
}

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) ID() uuid.UUID              { return r.id }
func (r *Request) RequesterID() uuid.UUID     { return r.requesterID }
func (r *Request) RequesterSlotID() uuid.UUID { return r.requesterSlotID }
func (r *Request) OwnerID() uuid.UUID         { return r.ownerID }
func (r *Request) OwnerSlotID() uuid.UUID     { return r.ownerSlotID }
func (r *Request) Status() Status             { return r.status }
func (r *Request) CreatedAt() time.Time       { return r.createdAt }
func (r *Request) UpdatedAt() time.Time       { return r.updatedAt }
