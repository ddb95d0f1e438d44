package readstore

import (
	"context"

	"rooms-api/internal/infra"
	"rooms-api/internal/infra/db"
	"rooms-api/internal/pkg/pgconv"
	"rooms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const listBookingsSQL = `
SELECT b.id, b.title, b.start_at, b.end_at, b.room_id, r.code, r.name, b.created_at
  FROM bookings b
  JOIN rooms r ON r.id = b.room_id
 ORDER BY b.start_at DESC`

const getBookingByIDSQL = `
SELECT b.id, b.title, b.start_at, b.end_at, b.room_id, r.code, r.name, b.created_at
  FROM bookings b
  JOIN rooms r ON r.id = b.room_id
 WHERE b.id = $1`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) ListAll(ctx context.Context) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, listBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.StartAt, &v.EndAt,
			&v.RoomID, &v.RoomCode, &v.RoomName, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return views, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, getBookingByIDSQL, id).Scan(
		&v.ID, &v.Title, &v.StartAt, &v.EndAt,
		&v.RoomID, &v.RoomCode, &v.RoomName, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &v, nil
}
