package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/infra/readstore"
	"slotswapper/internal/infra/repository"
	"slotswapper/internal/pkg/errs"
	"slotswapper/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries  = 3
	baseBackoff = 10 * time.Millisecond
	maxBackoff  = 200 * time.Millisecond
)

// Serialization failures surface as these SQLSTATE codes and are safe to
// retry with a fresh transaction.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

// Within runs fn inside a serializable transaction. Slot and swap-request
// transitions span multiple rows, so anything weaker would let two concurrent
// accepts observe stale slot statuses.
func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return err
			}
		}

		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}

	return infra.WrapRepoErr("transaction retries exhausted", lastErr)
}

func (u *PostgresUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgtx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		_ = pgtx.Rollback(ctx)
	}()

	if err := fn(ctx, newPgTx(pgtx)); err != nil {
		return err
	}

	if err := pgtx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

func sleepBackoff(ctx context.Context, attempt int) error {
	backoff := baseBackoff << (attempt - 1)
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	jitter, err := rand.Int(rand.Reader, big.NewInt(int64(backoff)))
	if err != nil {
		return errs.Wrap(err, "failed to generate backoff jitter")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff + time.Duration(jitter.Int64())):
		return nil
	}
}

// pgTx hands out lazily built repositories bound to one transaction.
type pgTx struct {
	tx pgx.Tx

	slots         shared.SlotRepository
	swaps         shared.SwapRepository
	users         shared.UserRepository
	notifications shared.NotificationRepository
	reads         shared.CommandReads
}

func newPgTx(tx pgx.Tx) shared.Tx {
	return &pgTx{tx: tx}
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slots == nil {
		t.slots = repository.NewSlotRepository(t.tx)
	}
	return t.slots
}

func (t *pgTx) Swaps() shared.SwapRepository {
	if t.swaps == nil {
		t.swaps = repository.NewSwapRepository(t.tx)
	}
	return t.swaps
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.tx)
	}
	return t.users
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.tx)
	}
	return t.notifications
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = readstore.NewCommandReads(t.tx)
	}
	return t.reads
}

func (t *pgTx) DB() db.DBTX {
	return t.tx
}
