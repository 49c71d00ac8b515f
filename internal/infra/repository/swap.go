package repository

import (
	"context"

	"slotswapper/internal/domain/swap"
	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"

	"github.com/google/uuid"
)

type SwapRepository struct {
	db db.DBTX
}

func NewSwapRepository(db db.DBTX) *SwapRepository {
	return &SwapRepository{db: db}
}

func (r *SwapRepository) Create(ctx context.Context, req *swap.Request) (uuid.UUID, error) {
	const query = `
		INSERT INTO swap_requests (requester_id, requester_slot_id, owner_id, owner_slot_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		req.RequesterID(), req.RequesterSlotID(), req.OwnerID(), req.OwnerSlotID(), req.Status(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert swap request", err)
	}
	return id, nil
}

func (r *SwapRepository) SetStatus(ctx context.Context, id uuid.UUID, status swap.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE swap_requests SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return infra.WrapRepoErr("failed to set swap request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("swap request not found", nil, infra.KindNotFound)
	}
	return nil
}
