package readstore

import (
	"context"
	"time"

	"rooms-api/internal/infra"
	"rooms-api/internal/infra/db"
	"rooms-api/internal/pkg/pgconv"
	"rooms-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// Bookings covering the instant are counted with inclusive boundaries:
// the status projection treats "now" as a point, not an interval.
const searchRoomsSQL = `
SELECT r.id, r.code, r.name, r.capacity, r.equipment, r.status, r.note,
       (SELECT count(*) FROM bookings b
         WHERE b.room_id = r.id
           AND b.start_at <= $2
           AND b.end_at >= $2) AS active_bookings
  FROM rooms r
 WHERE $1 = '' OR r.name ILIKE '%' || $1 || '%' OR r.code ILIKE '%' || $1 || '%'
 ORDER BY r.code ASC`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) Search(ctx context.Context, search string, now time.Time) ([]queries.RoomRecord, error) {
	rows, err := s.db.Query(ctx, searchRoomsSQL, search, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search rooms", err)
	}
	defer rows.Close()

	var records []queries.RoomRecord
	for rows.Next() {
		var (
			rec  queries.RoomRecord
			note pgtype.Text
		)
		if err := rows.Scan(
			&rec.ID, &rec.Code, &rec.Name, &rec.Capacity,
			&rec.Equipment, &rec.Status, &note, &rec.ActiveBookings,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		rec.Note = pgconv.StringPtrFromPgtype(note)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return records, nil
}
