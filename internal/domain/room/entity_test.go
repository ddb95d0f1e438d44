//go:build unit

package room_test

import (
	"testing"

	"rooms-api/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		roomName string
		capacity int
		status   room.Status
		errIs    error
	}{
		{
			name:     "valid room",
			code:     "201",
			roomName: "Конференц-зал",
			capacity: 50,
			status:   room.StatusAvailable,
		},
		{
			name:     "empty code rejected",
			code:     "  ",
			roomName: "Room",
			capacity: 10,
			status:   room.StatusAvailable,
			errIs:    room.ErrEmptyCode,
		},
		{
			name:     "empty name rejected",
			code:     "101",
			roomName: "",
			capacity: 10,
			status:   room.StatusAvailable,
			errIs:    room.ErrEmptyName,
		},
		{
			name:     "zero capacity rejected",
			code:     "101",
			roomName: "Room",
			capacity: 0,
			status:   room.StatusAvailable,
			errIs:    room.ErrInvalidCapacity,
		},
		{
			name:     "unknown status rejected",
			code:     "101",
			roomName: "Room",
			capacity: 10,
			status:   room.Status("closed"),
			errIs:    room.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := room.NewRoom(tt.code, tt.roomName, tt.capacity, []string{"wifi"}, tt.status, nil)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, r.ID())
			assert.Equal(t, tt.code, r.Code())
			assert.Equal(t, tt.status, r.Status())
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, room.StatusAvailable.IsValid())
	assert.True(t, room.StatusReserved.IsValid())
	assert.True(t, room.StatusMaintenance.IsValid())
	assert.False(t, room.Status("").IsValid())
	assert.False(t, room.Status("closed").IsValid())
}
