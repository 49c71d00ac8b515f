package repository

import (
	"context"
	"time"

	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/worker"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// ClaimDue moves up to limit due jobs from pending to sending and returns
// them. The claim is a status transition, not just a row lock, so jobs stay
// invisible to concurrent dispatchers after this statement commits; a failed
// dispatch hands the job back via MarkFailed.
func (r *NotificationRepository) ClaimDue(ctx context.Context, limit int) ([]*worker.Job, error) {
	const query = `
		UPDATE notification_jobs
		SET status = 'sending', updated_at = now()
		WHERE id IN (
			SELECT id
			FROM notification_jobs
			WHERE status = 'pending' AND run_at <= now()
			ORDER BY run_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, topic, payload, attempts`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []*worker.Job
	for rows.Next() {
		var j worker.Job
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notification_jobs SET status = 'sent', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkFailed reschedules the job with a delay, or parks it as failed once the
// attempt budget is spent.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, cause string, retryIn time.Duration) error {
	const maxAttempts = 5

	if attempts+1 >= maxAttempts {
		_, err := r.db.Exec(ctx,
			`UPDATE notification_jobs
			 SET status = 'failed', attempts = attempts + 1, last_error = $1, updated_at = now()
			 WHERE id = $2`, cause, id)
		if err != nil {
			return infra.WrapRepoErr("failed to mark notification job failed", err)
		}
		return nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE notification_jobs
		 SET status = 'pending', attempts = attempts + 1, last_error = $1, run_at = now() + ($2 * interval '1 second'), updated_at = now()
		 WHERE id = $3`, cause, int(retryIn.Seconds()), id)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}
