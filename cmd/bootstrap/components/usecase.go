package components

import (
	"rooms-api/internal/pkg/clock"
	"rooms-api/internal/usecase/commands"
	"rooms-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewStatsQueries,
	),
)
