//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rooms-api/internal/pkg/clock"
	"rooms-api/internal/pkg/errs"
	"rooms-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsReadStore struct {
	mock.Mock
}

func (m *MockStatsReadStore) Snapshot(ctx context.Context, now time.Time) (*queries.StatsSnapshot, error) {
	args := m.Called(ctx, now)
	if v := args.Get(0); v != nil {
		return v.(*queries.StatsSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestStatistics(t *testing.T) {
	t.Run("available rooms is total minus active", func(t *testing.T) {
		tests := []struct {
			name string
			snap queries.StatsSnapshot
		}{
			{name: "no activity", snap: queries.StatsSnapshot{TotalRooms: 4, ActiveBookings: 0, TotalEquipment: 13}},
			{name: "partial occupancy", snap: queries.StatsSnapshot{TotalRooms: 4, ActiveBookings: 2, TotalEquipment: 13}},
			{name: "full occupancy", snap: queries.StatsSnapshot{TotalRooms: 4, ActiveBookings: 4, TotalEquipment: 13}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := new(MockStatsReadStore)
				snap := tt.snap
				store.On("Snapshot", mock.Anything, now).Return(&snap, nil)

				q := queries.NewStatsQueries(store, clock.NewMockClock(now))
				view, err := q.Statistics(context.Background())
				require.NoError(t, err)

				assert.Equal(t, snap.TotalRooms, view.TotalRooms)
				assert.Equal(t, snap.ActiveBookings, view.ActiveBookings)
				assert.Equal(t, snap.TotalRooms-snap.ActiveBookings, view.AvailableRooms)
				assert.Equal(t, snap.TotalEquipment, view.TotalEquipment)
			})
		}
	})

	t.Run("store failure surfaces as database error", func(t *testing.T) {
		store := new(MockStatsReadStore)
		store.On("Snapshot", mock.Anything, now).Return(nil, assert.AnError)

		q := queries.NewStatsQueries(store, clock.NewMockClock(now))
		_, err := q.Statistics(context.Background())
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
