package components

import (
	"rooms-api/internal/handler"
	"rooms-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewStatsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
