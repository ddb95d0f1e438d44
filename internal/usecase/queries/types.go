package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// RoomRecord is the raw read-store row: stored administrative status plus
// the number of bookings covering the query instant. Status projection
// happens in the query service, never in SQL.
type RoomRecord struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Capacity       int32
	Equipment      []string
	Status         string
	Note           *string
	ActiveBookings int64
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	Equipment []string  `json:"equipment"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
}

type RoomPage struct {
	Items []RoomView `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartAt   time.Time `json:"start"`
	EndAt     time.Time `json:"end"`
	RoomID    uuid.UUID `json:"roomId"`
	RoomCode  string    `json:"roomCode"`
	RoomName  string    `json:"roomName"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatisticsView struct {
	TotalRooms     int64 `json:"totalRooms"`
	ActiveBookings int64 `json:"activeBookings"`
	AvailableRooms int64 `json:"availableRooms"`
	TotalEquipment int64 `json:"totalEquipment"`
}
