package queries

import (
	"context"
	"time"

	"rooms-api/internal/domain/room"
	"rooms-api/internal/pkg/clock"
	"rooms-api/internal/pkg/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListRoomsParams struct {
	Search string
	Status string
	Page   int
	Limit  int
}

type RoomReadStore interface {
	// Search returns rooms matching the optional case-insensitive substring
	// over name/code, ordered by code, each with its count of bookings
	// containing now.
	Search(ctx context.Context, search string, now time.Time) ([]RoomRecord, error)
}

type RoomQueries interface {
	List(ctx context.Context, params ListRoomsParams) (*RoomPage, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
	clock     clock.Clock
}

func NewRoomQueries(readStore RoomReadStore, clock clock.Clock) RoomQueries {
	return &roomQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// List projects each room's effective status, filters by it, then paginates.
// The status filter has to run after projection because the filterable value
// is derived; total is the post-filter, pre-pagination count.
func (q *roomQueriesImpl) List(ctx context.Context, params ListRoomsParams) (*RoomPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	records, err := q.readStore.Search(ctx, params.Search, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]RoomView, 0, len(records))
	for _, rec := range records {
		effective := room.EffectiveStatus(room.Status(rec.Status), int(rec.ActiveBookings))
		if params.Status != "" && string(effective) != params.Status {
			continue
		}
		items = append(items, RoomView{
			ID:        rec.ID,
			Code:      rec.Code,
			Name:      rec.Name,
			Capacity:  rec.Capacity,
			Equipment: rec.Equipment,
			Status:    string(effective),
			Note:      rec.Note,
		})
	}

	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &RoomPage{
		Items: items[start:end],
		Total: total,
		Page:  page,
	}, nil
}
