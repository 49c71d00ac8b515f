//go:build e2e

package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"slotswapper/internal/infra/repository"
	"slotswapper/internal/worker"
	"slotswapper/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type outboxSuite struct {
	e2e.SharedSuite
}

func TestOutboxSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(outboxSuite))
}

func (s *outboxSuite) insertDueJob(ctx context.Context, kind string) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(ctx,
		`INSERT INTO notification_jobs (kind, topic, payload, run_at)
		 VALUES ($1, 'swap', '{}'::jsonb, now() - interval '1 second')
		 RETURNING id`, kind).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *outboxSuite) jobStatus(ctx context.Context, id uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(ctx,
		`SELECT status FROM notification_jobs WHERE id = $1`, id).Scan(&status)
	s.Require().NoError(err)
	return status
}

func (s *outboxSuite) TestClaimDue() {
	ctx := context.Background()
	repo := repository.NewNotificationRepository(s.DB)

	s.Run("クレームでジョブがsendingに遷移し、二重クレームされない", func() {
		first := s.insertDueJob(ctx, "swap.proposed")
		second := s.insertDueJob(ctx, "swap.accepted")

		jobs, err := repo.ClaimDue(ctx, 10)
		s.Require().NoError(err)
		s.Len(jobs, 2)
		s.Equal("sending", s.jobStatus(ctx, first))
		s.Equal("sending", s.jobStatus(ctx, second))

		// クレーム済みのジョブは次のディスパッチャから見えない
		again, err := repo.ClaimDue(ctx, 10)
		s.Require().NoError(err)
		s.Empty(again)
	})

	s.Run("並行クレームでも各ジョブは一度だけ配信される", func() {
		const jobCount = 20
		for range jobCount {
			s.insertDueJob(ctx, "swap.proposed")
		}

		claims := make([][]*worker.Job, 2)
		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range claims {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				claims[i], errs[i] = repo.ClaimDue(ctx, jobCount)
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			s.Require().NoError(err)
		}

		seen := make(map[uuid.UUID]int)
		for _, jobs := range claims {
			for _, job := range jobs {
				seen[job.ID]++
			}
		}
		s.Len(seen, jobCount, "全ジョブがクレームされること")
		for id, count := range seen {
			s.Equalf(1, count, "ジョブ %s が複数回クレームされた", id)
		}
	})

	s.Run("送信成功でsent、失敗はpendingに戻り将来時刻へ再スケジュール", func() {
		sentID := s.insertDueJob(ctx, "swap.proposed")
		failedID := s.insertDueJob(ctx, "swap.rejected")

		jobs, err := repo.ClaimDue(ctx, 10)
		s.Require().NoError(err)
		s.Len(jobs, 2)

		s.Require().NoError(repo.MarkSent(ctx, sentID))
		s.Equal("sent", s.jobStatus(ctx, sentID))

		s.Require().NoError(repo.MarkFailed(ctx, failedID, 0, "smtp unreachable", time.Minute))
		s.Equal("pending", s.jobStatus(ctx, failedID))

		// 再スケジュール先は未来なので、すぐには再クレームされない
		again, err := repo.ClaimDue(ctx, 10)
		s.Require().NoError(err)
		s.Empty(again)
	})

	s.Run("試行回数を使い切ったジョブはfailedで確定する", func() {
		id := s.insertDueJob(ctx, "swap.proposed")

		jobs, err := repo.ClaimDue(ctx, 10)
		s.Require().NoError(err)
		s.Len(jobs, 1)

		s.Require().NoError(repo.MarkFailed(ctx, id, 4, "smtp unreachable", time.Minute))
		s.Equal("failed", s.jobStatus(ctx, id))

		again, err := repo.ClaimDue(ctx, 10)
		s.Require().NoError(err)
		s.Empty(again)
	})
}
