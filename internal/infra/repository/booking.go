package repository

import (
	"context"
	"errors"

	"rooms-api/internal/domain/booking"
	"rooms-api/internal/infra"
	"rooms-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeExclusionViolation  = "23P01"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeUniqueViolation     = "23505"
)

const createBookingSQL = `
INSERT INTO bookings (id, title, start_at, end_at, room_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create is the single atomic insert-if-no-overlap: the bookings_no_overlap
// exclusion constraint rejects any interval overlapping an existing booking
// for the same room, so concurrent creations cannot both commit. There is
// deliberately no separate existence check before the insert.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	slot := b.TimeSlot()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createBookingSQL,
		b.ID(), b.Title().String(), slot.Start(), slot.End(), b.RoomID(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				return uuid.Nil, infra.WrapRepoErr("booking interval overlaps an existing booking", err, infra.KindConflict)
			case pgErrCodeForeignKeyViolation:
				return uuid.Nil, infra.WrapRepoErr("room does not exist", err, infra.KindForeignKeyViolated)
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// Delete is idempotent: a missing id affects zero rows and is not an error.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, deleteBookingSQL, id); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}
