package queries

import (
	"context"
	"time"

	"rooms-api/internal/pkg/clock"
	"rooms-api/internal/pkg/errs"
)

type StatsSnapshot struct {
	TotalRooms     int64
	ActiveBookings int64
	TotalEquipment int64
}

type StatsReadStore interface {
	// Snapshot counts rooms, bookings containing now (same inclusive
	// containment as the room status projection) and equipment items, in
	// one consistent read.
	Snapshot(ctx context.Context, now time.Time) (*StatsSnapshot, error)
}

type StatsQueries interface {
	Statistics(ctx context.Context) (*StatisticsView, error)
}

type statsQueriesImpl struct {
	readStore StatsReadStore
	clock     clock.Clock
}

func NewStatsQueries(readStore StatsReadStore, clock clock.Clock) StatsQueries {
	return &statsQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *statsQueriesImpl) Statistics(ctx context.Context) (*StatisticsView, error) {
	snap, err := q.readStore.Snapshot(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &StatisticsView{
		TotalRooms:     snap.TotalRooms,
		ActiveBookings: snap.ActiveBookings,
		AvailableRooms: snap.TotalRooms - snap.ActiveBookings,
		TotalEquipment: snap.TotalEquipment,
	}, nil
}
