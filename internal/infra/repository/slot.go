package repository

import (
	"context"
	"fmt"
	"strings"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(db db.DBTX) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) (uuid.UUID, error) {
	const query = `
		INSERT INTO slots (user_id, title, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, s.UserID(), s.Title(), s.StartTime(), s.EndTime(), s.Status()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert slot", err)
	}
	return id, nil
}

func (r *SlotRepository) Update(ctx context.Context, id uuid.UUID, patch shared.SlotPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.StartTime != nil {
		appendSet("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		appendSet("end_time", *patch.EndTime)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE slots SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) SetStatus(ctx context.Context, id uuid.UUID, status slot.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE slots SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return infra.WrapRepoErr("failed to set slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) SetOwnerAndStatus(ctx context.Context, id, ownerID uuid.UUID, status slot.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE slots SET user_id = $1, status = $2, updated_at = now() WHERE id = $3`, ownerID, status, id)
	if err != nil {
		return infra.WrapRepoErr("failed to transfer slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
