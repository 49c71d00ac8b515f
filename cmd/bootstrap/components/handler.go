package components

import (
	"slotswapper/internal/handler"
	"slotswapper/internal/handler/api"
	"slotswapper/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewSwapHandler,
		api.NewFeedHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, slot *api.SlotHandler, swap *api.SwapHandler, feed *api.FeedHandler) handler.Handlers {
	return handler.Handlers{
		Auth: auth,
		Slot: slot,
		Swap: swap,
		Feed: feed,
	}
}
