package commands

import (
	"context"
	"time"

	"rooms-api/internal/domain/booking"
	"rooms-api/internal/infra"
	"rooms-api/internal/pkg/errs"
	"rooms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	Title   string
	StartAt time.Time
	EndAt   time.Time
	RoomID  uuid.UUID
}

type BookingRepository interface {
	// Create persists the booking as a single atomic insert-if-no-overlap;
	// an overlapping interval on the same room surfaces as KindConflict.
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// Delete by id; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingViewReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	viewReader  BookingViewReader
}

func NewBookingCommands(bookingRepo BookingRepository, viewReader BookingViewReader) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		viewReader:  viewReader,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	title, err := booking.NewTitle(params.Title)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	slot, err := booking.NewTimeSlot(params.StartAt, params.EndAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	entity := booking.NewBooking(title, slot, params.RoomID)

	bookingID, err := c.bookingRepo.Create(ctx, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	// Read-after-write: return the view with the room code/name joined
	view, err := c.viewReader.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := c.bookingRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
