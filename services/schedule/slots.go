package schedule

import (
	"time"

	"barberbook/models"
)

// SlotWidth is the fixed width of every bookable slot, in minutes.
const SlotWidth = 15

// DateLayout is the naive calendar-date form used across the availability
// store. Day equality is string equality; no timezone math.
const DateLayout = "2006-01-02"

// GenerateShiftSlots produces free slots at SlotWidth boundaries from start
// (inclusive) to end (exclusive).
func GenerateShiftSlots(startTime, endTime string) ([]models.Slot, error) {
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return nil, err
	}
	end, err := TimeToMinutes(endTime)
	if err != nil {
		return nil, err
	}

	var slots []models.Slot
	for m := start; m < end; m += SlotWidth {
		t, err := MinutesToTime(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.Slot{Time: t})
	}
	return slots, nil
}

// GenerateDaySlots produces the ordered slot sequence for one calendar date
// from a barber's working-hours configuration. An off day yields no slots.
// Deterministic: identical inputs always yield an identical sequence.
func GenerateDaySlots(cfg models.WorkingHoursConfig, date time.Time) ([]models.Slot, error) {
	dayOfWeek := int(date.Weekday())

	if len(cfg.WorkingDays) > 0 && !containsDay(cfg.WorkingDays, dayOfWeek) {
		return nil, nil
	}

	// Per-day shifts take precedence over the default run, in insertion order.
	for _, sched := range cfg.DailySchedule {
		if sched.DayOfWeek != dayOfWeek || len(sched.Shifts) == 0 {
			continue
		}
		var slots []models.Slot
		for _, shift := range sched.Shifts {
			shiftSlots, err := GenerateShiftSlots(shift.StartTime, shift.EndTime)
			if err != nil {
				return nil, err
			}
			slots = append(slots, shiftSlots...)
		}
		return slots, nil
	}

	start := cfg.DefaultStart
	if start == "" {
		start = "09:00"
	}
	end := cfg.DefaultEnd
	if end == "" {
		end = "18:00"
	}
	return GenerateShiftSlots(start, end)
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
