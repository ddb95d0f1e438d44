package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Title  string    `json:"title" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	RoomID uuid.UUID `json:"roomId" binding:"required"`
}
