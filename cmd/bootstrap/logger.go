package bootstrap

import (
	"log/slog"

	"slotswapper/internal/handler/middleware"
	"slotswapper/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process-wide slog.Logger from the log config so the
// worker and handlers share one handler with one level.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
