//go:build unit

package room_test

import (
	"testing"

	"rooms-api/internal/domain/room"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		name           string
		stored         room.Status
		activeBookings int
		want           room.Status
	}{
		{
			name:           "available with no bookings stays available",
			stored:         room.StatusAvailable,
			activeBookings: 0,
			want:           room.StatusAvailable,
		},
		{
			name:           "available with active booking becomes reserved",
			stored:         room.StatusAvailable,
			activeBookings: 1,
			want:           room.StatusReserved,
		},
		{
			name:           "maintenance overrides occupancy",
			stored:         room.StatusMaintenance,
			activeBookings: 3,
			want:           room.StatusMaintenance,
		},
		{
			name:           "maintenance with no bookings stays maintenance",
			stored:         room.StatusMaintenance,
			activeBookings: 0,
			want:           room.StatusMaintenance,
		},
		{
			name:           "stored reserved passes through without bookings",
			stored:         room.StatusReserved,
			activeBookings: 0,
			want:           room.StatusReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, room.EffectiveStatus(tt.stored, tt.activeBookings))
		})
	}
}
