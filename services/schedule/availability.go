package schedule

import (
	"fmt"

	"barberbook/models"
)

// SlotsNeeded returns how many consecutive slots a service run of the given
// duration occupies. Non-positive durations occupy no slots.
func SlotsNeeded(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return (durationMinutes + SlotWidth - 1) / SlotWidth
}

// TotalDuration sums the durations of the requested services, in minutes.
func TotalDuration(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.Duration
	}
	return total
}

// HasConsecutiveSlots reports whether a booking of the given duration can
// start at startTime: the start slot exists and the whole run of consecutive
// slots is free. A missing start time or a run past the end of the day is
// simply unavailable, not an error.
func HasConsecutiveSlots(slots []models.Slot, startTime string, durationMinutes int) bool {
	needed := SlotsNeeded(durationMinutes)
	if needed == 0 {
		return false
	}

	start := slotIndex(slots, startTime)
	if start == -1 {
		return false
	}
	if start+needed > len(slots) {
		return false
	}
	for i := 0; i < needed; i++ {
		if slots[start+i].IsBooked {
			return false
		}
	}
	return true
}

// AvailableStartSlots returns, in ascending time order, every slot that is a
// valid booking start for the given duration. A free slot without enough
// consecutive free slots after it is not a valid start. A non-positive
// duration has no valid starts.
func AvailableStartSlots(slots []models.Slot, durationMinutes int) []models.Slot {
	needed := SlotsNeeded(durationMinutes)
	if needed == 0 {
		return nil
	}

	var available []models.Slot
	for i := 0; i+needed <= len(slots); i++ {
		free := true
		for j := 0; j < needed; j++ {
			if slots[i+j].IsBooked {
				free = false
				break
			}
		}
		if free {
			available = append(available, slots[i])
		}
	}
	return available
}

// SlotsToBook returns the start times of the consecutive slots a booking at
// startTime occupies. Callers must have validated the run with
// HasConsecutiveSlots first; an out-of-range run is a precondition violation,
// never silently truncated.
func SlotsToBook(slots []models.Slot, startTime string, durationMinutes int) ([]string, error) {
	needed := SlotsNeeded(durationMinutes)
	if needed == 0 {
		return nil, fmt.Errorf("booking duration must be positive, got %d minutes", durationMinutes)
	}

	start := slotIndex(slots, startTime)
	if start == -1 {
		return nil, fmt.Errorf("start time %s not found in day slots", startTime)
	}
	if start+needed > len(slots) {
		return nil, fmt.Errorf("booking of %d minutes starting at %s runs past end of day", durationMinutes, startTime)
	}

	times := make([]string, 0, needed)
	for i := 0; i < needed; i++ {
		times = append(times, slots[start+i].Time)
	}
	return times, nil
}

func slotIndex(slots []models.Slot, startTime string) int {
	for i, s := range slots {
		if s.Time == startTime {
			return i
		}
	}
	return -1
}
