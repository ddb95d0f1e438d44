package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInterval = errors.New("start time must be strictly before end time")
	ErrEmptyTitle      = errors.New("booking title cannot be empty")
)

// TimeSlot is a half-open interval [start, end) in UTC.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidInterval
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Overlaps uses exclusive boundary comparisons: a slot ending exactly when
// another starts does not overlap it. This is the creation-time conflict
// predicate and must stay separate from ContainsInstant.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

// ContainsInstant uses inclusive boundary comparisons: a slot whose end
// equals t still contains t. "Now" is a point, not an interval, so the
// status projection and statistics deliberately count boundary instants.
func (ts TimeSlot) ContainsInstant(t time.Time) bool {
	return !ts.start.After(t) && !ts.end.Before(t)
}

type Title struct {
	value string
}

func NewTitle(value string) (Title, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Title{}, ErrEmptyTitle
	}
	return Title{value: trimmed}, nil
}

func (t Title) String() string {
	return t.value
}
