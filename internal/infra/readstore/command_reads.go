package readstore

import (
	"context"
	"errors"

	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the snapshot lookups commands validate against inside
// a transaction, so decisions and writes see the same row versions.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(db db.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

func (r *CommandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	const query = `
		SELECT id, user_id, title, start_time, end_time, status, created_at, updated_at
		FROM slots
		WHERE id = $1`

	var s shared.SlotSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Title, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load slot snapshot", err)
	}
	return &s, nil
}

func (r *CommandReads) SwapRequestByID(ctx context.Context, id uuid.UUID) (*shared.SwapRequestSnapshot, error) {
	const query = `
		SELECT id, requester_id, requester_slot_id, owner_id, owner_slot_id, status, created_at, updated_at
		FROM swap_requests
		WHERE id = $1`

	var s shared.SwapRequestSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.RequesterID, &s.RequesterSlotID, &s.OwnerID, &s.OwnerSlotID, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("swap request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load swap request snapshot", err)
	}
	return &s, nil
}
