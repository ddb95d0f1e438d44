package queries

import (
	"context"

	"rooms-api/internal/pkg/errs"
)

type BookingReadStore interface {
	// ListAll returns all bookings ordered by start descending, with the
	// owning room's code and name joined in.
	ListAll(ctx context.Context) ([]BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]BookingView, error) {
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
