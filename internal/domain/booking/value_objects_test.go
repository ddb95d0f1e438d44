//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rooms-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	ts, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return ts
}

func TestNewTimeSlot(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid interval",
			start: base,
			end:   base.Add(time.Hour),
		},
		{
			name:  "zero-length interval rejected",
			start: base,
			end:   base,
			errIs: booking.ErrInvalidInterval,
		},
		{
			name:  "inverted interval rejected",
			start: base.Add(time.Hour),
			end:   base,
			errIs: booking.ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := booking.NewTimeSlot(tt.start, tt.end)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, ts.Start())
			assert.Equal(t, tt.end, ts.End())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	// Reference slot [10:00, 11:00)
	ref := slot(t, base, base.Add(time.Hour))

	tests := []struct {
		name     string
		other    booking.TimeSlot
		overlaps bool
	}{
		{
			name:     "identical slot overlaps",
			other:    slot(t, base, base.Add(time.Hour)),
			overlaps: true,
		},
		{
			name:     "contained slot overlaps",
			other:    slot(t, base.Add(15*time.Minute), base.Add(45*time.Minute)),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    slot(t, base.Add(30*time.Minute), base.Add(90*time.Minute)),
			overlaps: true,
		},
		{
			name:     "touching at end does not overlap",
			other:    slot(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			overlaps: false,
		},
		{
			name:     "touching at start does not overlap",
			other:    slot(t, base.Add(-time.Hour), base),
			overlaps: false,
		},
		{
			name:     "disjoint later slot",
			other:    slot(t, base.Add(3*time.Hour), base.Add(4*time.Hour)),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, ref.Overlaps(tt.other))
			// overlap is symmetric
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(ref))
		})
	}
}

func TestTimeSlotContainsInstant(t *testing.T) {
	ts := slot(t, base, base.Add(time.Hour))

	tests := []struct {
		name     string
		instant  time.Time
		contains bool
	}{
		{name: "inside", instant: base.Add(30 * time.Minute), contains: true},
		{name: "start boundary is inclusive", instant: base, contains: true},
		{name: "end boundary is inclusive", instant: base.Add(time.Hour), contains: true},
		{name: "before start", instant: base.Add(-time.Second), contains: false},
		{name: "after end", instant: base.Add(time.Hour + time.Second), contains: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, ts.ContainsInstant(tt.instant))
		})
	}
}

// A slot ending exactly at an instant still contains that instant, yet a new
// slot starting there does not overlap it. The asymmetry is deliberate and
// observable at boundary instants; these assertions pin it down.
func TestBoundaryPredicatesStayDistinct(t *testing.T) {
	boundary := base.Add(time.Hour)
	ending := slot(t, base, boundary)
	starting := slot(t, boundary, boundary.Add(time.Hour))

	assert.True(t, ending.ContainsInstant(boundary))
	assert.False(t, ending.Overlaps(starting))
}

func TestNewTitle(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		errIs error
	}{
		{name: "plain title", value: "Standup", want: "Standup"},
		{name: "trimmed", value: "  Planning  ", want: "Planning"},
		{name: "empty rejected", value: "", errIs: booking.ErrEmptyTitle},
		{name: "whitespace only rejected", value: "   ", errIs: booking.ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := booking.NewTitle(tt.value)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, title.String())
		})
	}
}
