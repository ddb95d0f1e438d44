package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	title     Title
	timeSlot  TimeSlot
	roomID    uuid.UUID
	createdAt time.Time
}

func NewBooking(title Title, slot TimeSlot, roomID uuid.UUID) *Booking {
	return &Booking{
		id:       uuid.New(),
		title:    title,
		timeSlot: slot,
		roomID:   roomID,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	title Title,
	slot TimeSlot,
	roomID uuid.UUID,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		title:     title,
		timeSlot:  slot,
		roomID:    roomID,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Title() Title         { return b.title }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// ActiveAt reports whether the booking covers the given instant, using the
// inclusive containment predicate.
func (b *Booking) ActiveAt(t time.Time) bool {
	return b.timeSlot.ContainsInstant(t)
}
