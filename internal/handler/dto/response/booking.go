package response

import (
	"time"

	"rooms-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRoomResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID        uuid.UUID           `json:"id"`
	Title     string              `json:"title"`
	Start     time.Time           `json:"start"`
	End       time.Time           `json:"end"`
	RoomID    uuid.UUID           `json:"roomId"`
	Room      BookingRoomResponse `json:"room"`
	CreatedAt time.Time           `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Title:  v.Title,
		Start:  v.StartAt,
		End:    v.EndAt,
		RoomID: v.RoomID,
		Room: BookingRoomResponse{
			Code: v.RoomCode,
			Name: v.RoomName,
		},
		CreatedAt: v.CreatedAt,
	}
}
