package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode       = errors.New("room code cannot be empty")
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
	ErrInvalidStatus   = errors.New("invalid room status")
)

// Room is the catalog entity. The status field holds the administrative
// state (e.g. taken offline for maintenance); the state shown to users is
// derived per read via EffectiveStatus.
type Room struct {
	id        uuid.UUID
	code      string
	name      string
	capacity  int
	equipment []string
	status    Status
	note      *string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(code, name string, capacity int, equipment []string, status Status, note *string) (*Room, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Room{
		id:        uuid.New(),
		code:      code,
		name:      name,
		capacity:  capacity,
		equipment: equipment,
		status:    status,
		note:      note,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	code, name string,
	capacity int,
	equipment []string,
	status Status,
	note *string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:        id,
		code:      code,
		name:      name,
		capacity:  capacity,
		equipment: equipment,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Code() string         { return r.code }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Equipment() []string  { return r.equipment }
func (r *Room) Status() Status       { return r.status }
func (r *Room) Note() *string        { return r.note }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (r *Room) UnderMaintenance() bool {
	return r.status == StatusMaintenance
}
