package readstore

import (
	"context"
	"errors"

	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Every swap view joins both slots so clients can render the exchange
// without extra round trips.
const swapViewColumns = `
	sr.id, sr.requester_id, sr.requester_slot_id, sr.owner_id, sr.owner_slot_id, sr.status,
	rs.title, rs.start_time, rs.end_time,
	os.title, os.start_time, os.end_time,
	sr.created_at, sr.updated_at`

type SwapReadStore struct {
	db db.DBTX
}

func NewSwapReadStore(db db.DBTX) *SwapReadStore {
	return &SwapReadStore{db: db}
}

func (s *SwapReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.SwapRequestView, error) {
	query := `
		SELECT ` + swapViewColumns + `
		FROM swap_requests sr
		JOIN slots rs ON rs.id = sr.requester_slot_id
		JOIN slots os ON os.id = sr.owner_slot_id
		WHERE sr.id = $1`

	var v queries.SwapRequestView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.RequesterID, &v.RequesterSlotID, &v.OwnerID, &v.OwnerSlotID, &v.Status,
		&v.RequesterSlotTitle, &v.RequesterStart, &v.RequesterEnd,
		&v.OwnerSlotTitle, &v.OwnerStart, &v.OwnerEnd,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("swap request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find swap request", err)
	}
	return &v, nil
}

func (s *SwapReadStore) ListIncoming(ctx context.Context, ownerID uuid.UUID) ([]*queries.IncomingSwapView, error) {
	query := `
		SELECT ` + swapViewColumns + `,
		       ru.name, ru.email
		FROM swap_requests sr
		JOIN slots rs ON rs.id = sr.requester_slot_id
		JOIN slots os ON os.id = sr.owner_slot_id
		JOIN users ru ON ru.id = sr.requester_id
		WHERE sr.owner_id = $1
		ORDER BY sr.created_at DESC`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list incoming swap requests", err)
	}
	defer rows.Close()

	views := make([]*queries.IncomingSwapView, 0)
	for rows.Next() {
		var v queries.IncomingSwapView
		if err := rows.Scan(
			&v.ID, &v.RequesterID, &v.RequesterSlotID, &v.OwnerID, &v.OwnerSlotID, &v.Status,
			&v.RequesterSlotTitle, &v.RequesterStart, &v.RequesterEnd,
			&v.OwnerSlotTitle, &v.OwnerStart, &v.OwnerEnd,
			&v.CreatedAt, &v.UpdatedAt,
			&v.RequesterName, &v.RequesterEmail,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan incoming swap request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read incoming swap requests", err)
	}
	return views, nil
}

func (s *SwapReadStore) ListOutgoing(ctx context.Context, requesterID uuid.UUID) ([]*queries.OutgoingSwapView, error) {
	query := `
		SELECT ` + swapViewColumns + `,
		       ou.name, ou.email
		FROM swap_requests sr
		JOIN slots rs ON rs.id = sr.requester_slot_id
		JOIN slots os ON os.id = sr.owner_slot_id
		JOIN users ou ON ou.id = sr.owner_id
		WHERE sr.requester_id = $1
		ORDER BY sr.created_at DESC`

	rows, err := s.db.Query(ctx, query, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outgoing swap requests", err)
	}
	defer rows.Close()

	views := make([]*queries.OutgoingSwapView, 0)
	for rows.Next() {
		var v queries.OutgoingSwapView
		if err := rows.Scan(
			&v.ID, &v.RequesterID, &v.RequesterSlotID, &v.OwnerID, &v.OwnerSlotID, &v.Status,
			&v.RequesterSlotTitle, &v.RequesterStart, &v.RequesterEnd,
			&v.OwnerSlotTitle, &v.OwnerStart, &v.OwnerEnd,
			&v.CreatedAt, &v.UpdatedAt,
			&v.OwnerName, &v.OwnerEmail,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outgoing swap request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read outgoing swap requests", err)
	}
	return views, nil
}
