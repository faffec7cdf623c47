package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/models"
)

func makeSlots(times ...string) []models.Slot {
	slots := make([]models.Slot, 0, len(times))
	for _, tm := range times {
		slots = append(slots, models.Slot{Time: tm})
	}
	return slots
}

func book(slots []models.Slot, time, bookingID string) {
	for i := range slots {
		if slots[i].Time == time {
			slots[i].IsBooked = true
			slots[i].BookingID = bookingID
		}
	}
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{duration: 15, want: 1},
		{duration: 30, want: 2},
		{duration: 31, want: 3},
		{duration: 50, want: 4},
		{duration: 1, want: 1},
		{duration: 60, want: 4},
		{duration: 0, want: 0},
		{duration: -15, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotsNeeded(tt.duration), "duration=%d", tt.duration)
	}
}

func TestTotalDuration(t *testing.T) {
	services := []models.Service{
		{Name: "Haircut", Duration: 30},
		{Name: "Beard Trim", Duration: 20},
	}
	assert.Equal(t, 50, TotalDuration(services))
	assert.Equal(t, 0, TotalDuration(nil))
}

func TestHasConsecutiveSlots(t *testing.T) {
	slots := makeSlots("09:00", "09:15", "09:30", "09:45")

	assert.True(t, HasConsecutiveSlots(slots, "09:00", 60))
	assert.True(t, HasConsecutiveSlots(slots, "09:30", 30))

	// Start time missing from the day.
	assert.False(t, HasConsecutiveSlots(slots, "10:00", 15))

	// Run exceeds the day: false, not an error.
	assert.False(t, HasConsecutiveSlots(slots, "09:45", 30))

	book(slots, "09:30", "b1")
	assert.False(t, HasConsecutiveSlots(slots, "09:00", 45))
	assert.True(t, HasConsecutiveSlots(slots, "09:00", 30))
}

func TestAvailableStartSlots(t *testing.T) {
	slots := makeSlots("09:00", "09:15", "09:30")
	book(slots, "09:30", "b1")

	// Duration 30 needs 2 slots: 09:00 covers 09:00+09:15, both free.
	// 09:15 is itself free but 09:30 is booked, so it is not a valid start.
	starts := AvailableStartSlots(slots, 30)
	require.Len(t, starts, 1)
	assert.Equal(t, "09:00", starts[0].Time)
}

func TestAvailableStartSlots_AllFree(t *testing.T) {
	slots := makeSlots("09:00", "09:15", "09:30", "09:45")

	starts := AvailableStartSlots(slots, 30)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, slotTimes(starts))

	// The whole day as one run.
	starts = AvailableStartSlots(slots, 60)
	assert.Equal(t, []string{"09:00"}, slotTimes(starts))

	// Too long for the day.
	starts = AvailableStartSlots(slots, 75)
	assert.Empty(t, starts)
}

func TestNonPositiveDurations(t *testing.T) {
	slots := makeSlots("09:00", "09:15")

	// An empty service list sums to zero minutes; zero occupies nothing and
	// can start nowhere.
	assert.Empty(t, AvailableStartSlots(slots, 0))
	assert.Empty(t, AvailableStartSlots(slots, -30))
	assert.False(t, HasConsecutiveSlots(slots, "09:00", 0))

	_, err := SlotsToBook(slots, "09:00", 0)
	assert.Error(t, err)
}

func TestSlotsToBook(t *testing.T) {
	slots := makeSlots("10:00", "10:15", "10:30", "10:45", "11:00")

	times, err := SlotsToBook(slots, "10:00", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45"}, times)

	times, err = SlotsToBook(slots, "10:45", 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:45"}, times)
}

func TestSlotsToBook_PreconditionViolations(t *testing.T) {
	slots := makeSlots("10:00", "10:15")

	_, err := SlotsToBook(slots, "12:00", 15)
	assert.Error(t, err)

	// A run past the end of the day errors instead of truncating.
	_, err = SlotsToBook(slots, "10:15", 30)
	assert.Error(t, err)
}
