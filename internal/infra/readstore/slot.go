package readstore

import (
	"context"
	"errors"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(db db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

func (s *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	const query = `
		SELECT id, user_id, title, start_time, end_time, status, created_at, updated_at
		FROM slots
		WHERE id = $1`

	var v queries.SlotView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.Title, &v.StartTime, &v.EndTime, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	return &v, nil
}

func (s *SlotReadStore) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, user_id, title, start_time, end_time, status, created_at, updated_at
		FROM slots
		WHERE user_id = $1
		ORDER BY start_time ASC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.StartTime, &v.EndTime, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slots", err)
	}
	return views, nil
}

// ListSwappableExcept returns SWAPPABLE slots owned by anyone but userID,
// enriched with owner identity for the pick list.
func (s *SlotReadStore) ListSwappableExcept(ctx context.Context, userID uuid.UUID) ([]*queries.SwappableSlotView, error) {
	const query = `
		SELECT s.id, s.user_id, s.title, s.start_time, s.end_time, s.status, s.created_at, s.updated_at,
		       u.name, u.email
		FROM slots s
		JOIN users u ON u.id = s.user_id
		WHERE s.status = $1 AND s.user_id <> $2
		ORDER BY s.start_time ASC`

	rows, err := s.db.Query(ctx, query, slot.StatusSwappable, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list swappable slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SwappableSlotView, 0)
	for rows.Next() {
		var v queries.SwappableSlotView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Title, &v.StartTime, &v.EndTime, &v.Status, &v.CreatedAt, &v.UpdatedAt,
			&v.OwnerName, &v.OwnerEmail,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan swappable slot", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read swappable slots", err)
	}
	return views, nil
}
