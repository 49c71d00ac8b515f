package components

import (
	"context"
	"log/slog"

	"slotswapper/internal/pkg/config"
	"slotswapper/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewLogSender,
		NewNotifier,
	),
	fx.Invoke(StartNotifier),
)

func NewLogSender(logger *slog.Logger) worker.Sender {
	return worker.NewLogSender(logger)
}

func NewNotifier(store worker.OutboxStore, sender worker.Sender, logger *slog.Logger, cfg config.Config) *worker.Notifier {
	return worker.NewNotifier(store, sender, logger, cfg.Worker)
}

func StartNotifier(lc fx.Lifecycle, notifier *worker.Notifier) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return notifier.Start()
		},
		OnStop: func(_ context.Context) error {
			notifier.Stop()
			return nil
		},
	})
}
