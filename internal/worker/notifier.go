package worker

import (
	"context"
	"log/slog"
	"time"

	"slotswapper/internal/pkg/config"
	"slotswapper/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Job is one queued notification row.
type Job struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}

// OutboxStore is the persistence the dispatcher drains jobs from.
type OutboxStore interface {
	ClaimDue(ctx context.Context, limit int) ([]*Job, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, cause string, retryIn time.Duration) error
}

// Sender delivers one notification. The default implementation just logs;
// a mail or push integration can replace it without touching the dispatcher.
type Sender interface {
	Send(ctx context.Context, job *Job) error
}

type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, job *Job) error {
	s.logger.Info("notification dispatched",
		slog.String("job_id", job.ID.String()),
		slog.String("kind", job.Kind),
		slog.String("topic", job.Topic),
	)
	return nil
}

// Notifier periodically drains the notification outbox.
type Notifier struct {
	store  OutboxStore
	sender Sender
	logger *slog.Logger
	cfg    config.WorkerConfig
	cron   *cron.Cron
}

func NewNotifier(store OutboxStore, sender Sender, logger *slog.Logger, cfg config.WorkerConfig) *Notifier {
	return &Notifier{
		store:  store,
		sender: sender,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(),
	}
}

func (n *Notifier) Start() error {
	_, err := n.cron.AddFunc(n.cfg.NotifySchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := n.DrainOnce(ctx); err != nil {
			n.logger.Error("notification drain failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return errs.Wrap(err, "invalid notifier schedule")
	}
	n.cron.Start()
	return nil
}

func (n *Notifier) Stop() {
	ctx := n.cron.Stop()
	<-ctx.Done()
}

// DrainOnce claims one batch of due jobs and dispatches them. Failures are
// rescheduled with a linear backoff per attempt.
func (n *Notifier) DrainOnce(ctx context.Context) error {
	jobs, err := n.store.ClaimDue(ctx, n.cfg.NotifyBatch)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if err := n.sender.Send(ctx, job); err != nil {
			retryIn := time.Duration(job.Attempts+1) * time.Minute
			if markErr := n.store.MarkFailed(ctx, job.ID, job.Attempts, err.Error(), retryIn); markErr != nil {
				return markErr
			}
			continue
		}
		if err := n.store.MarkSent(ctx, job.ID); err != nil {
			return err
		}
	}
	return nil
}
