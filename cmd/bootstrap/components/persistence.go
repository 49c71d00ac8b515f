package components

import (
	"slotswapper/internal/infra/db"
	"slotswapper/internal/infra/readstore"
	"slotswapper/internal/infra/repository"
	"slotswapper/internal/infra/uow"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"
	"slotswapper/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction inside the UnitOfWork; only
// the pool-bound read stores and the outbox store live in the container.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewSwapReadStore,
			fx.As(new(queries.SwapReadStore)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(worker.OutboxStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
