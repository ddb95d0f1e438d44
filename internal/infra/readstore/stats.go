package readstore

import (
	"context"
	"time"

	"rooms-api/internal/infra"
	"rooms-api/internal/infra/db"
	"rooms-api/internal/usecase/queries"
)

// Single statement so the three counters come from one snapshot. The
// active-booking predicate is the same inclusive containment the room
// status projection uses.
const statsSnapshotSQL = `
SELECT (SELECT count(*) FROM rooms) AS total_rooms,
       (SELECT count(*) FROM bookings
         WHERE start_at <= $1 AND end_at >= $1) AS active_bookings,
       (SELECT coalesce(sum(cardinality(equipment)), 0) FROM rooms) AS total_equipment`

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

func (s *StatsReadStore) Snapshot(ctx context.Context, now time.Time) (*queries.StatsSnapshot, error) {
	var snap queries.StatsSnapshot
	err := s.db.QueryRow(ctx, statsSnapshotSQL, now).Scan(
		&snap.TotalRooms, &snap.ActiveBookings, &snap.TotalEquipment,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read statistics snapshot", err)
	}

	return &snap, nil
}
