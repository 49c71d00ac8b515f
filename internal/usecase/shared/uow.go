package shared

import (
	"context"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"
	"slotswapper/internal/domain/user"
	"slotswapper/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the Record Store transaction boundary. Within runs fn in a
// serializable transaction with retry so that compound transitions across
// slots and swap requests are all-or-nothing.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	Swaps() SwapRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the snapshot lookups commands validate against inside a
// transaction.
type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	SwapRequestByID(ctx context.Context, id uuid.UUID) (*SwapRequestSnapshot, error)
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch SlotPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status slot.Status) error
	SetOwnerAndStatus(ctx context.Context, id, ownerID uuid.UUID, status slot.Status) error
}

type SwapRepository interface {
	Create(ctx context.Context, r *swap.Request) (uuid.UUID, error)
	SetStatus(ctx context.Context, id uuid.UUID, status swap.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
