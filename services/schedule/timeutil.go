package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeToMinutes parses a 24-hour "HH:MM" string into minutes since midnight.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, newFormatError(t, "expected HH:MM")
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, newFormatError(t, "hour is not a number")
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, newFormatError(t, "minute is not a number")
	}
	if hours < 0 || hours > 23 {
		return 0, newFormatError(t, "hour out of range")
	}
	if mins < 0 || mins > 59 {
		return 0, newFormatError(t, "minute out of range")
	}
	return hours*60 + mins, nil
}

// MinutesToTime renders minutes since midnight as a 24-hour "HH:MM" string.
// Values outside a single day are rejected rather than wrapped; a caller that
// overflows midnight has a scheduling bug, not a representable time.
func MinutesToTime(minutes int) (string, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", newFormatError(strconv.Itoa(minutes), "minutes outside a single day")
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// AddMinutes shifts a 24-hour "HH:MM" time forward by delta minutes.
func AddMinutes(t string, delta int) (string, error) {
	total, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	return MinutesToTime(total + delta)
}

// To24Hour converts a 12-hour time like "02:30 PM" to 24-hour "14:30".
// Noon is "12:00 PM" and midnight is "12:00 AM".
func To24Hour(time12h string) (string, error) {
	fields := strings.Fields(time12h)
	if len(fields) != 2 {
		return "", newFormatError(time12h, "expected HH:MM AM|PM")
	}
	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return "", newFormatError(time12h, "expected AM or PM suffix")
	}
	mins, err := TimeToMinutes(fields[0])
	if err != nil {
		return "", err
	}
	hours := mins / 60
	if hours < 1 || hours > 12 {
		return "", newFormatError(time12h, "hour out of range for 12-hour clock")
	}
	if period == "PM" && hours != 12 {
		hours += 12
	} else if period == "AM" && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, mins%60), nil
}

// To12Hour converts a 24-hour time like "14:30" to "02:30 PM". Used only at
// presentation boundaries; persisted times stay in 24-hour form.
func To12Hour(time24h string) (string, error) {
	mins, err := TimeToMinutes(time24h)
	if err != nil {
		return "", err
	}
	hours := mins / 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	switch {
	case hours == 0:
		hours = 12
	case hours > 12:
		hours -= 12
	}
	return fmt.Sprintf("%02d:%02d %s", hours, mins%60, period), nil
}

// Is12Hour reports whether a time string carries an AM/PM suffix.
func Is12Hour(t string) bool {
	upper := strings.ToUpper(t)
	return strings.Contains(upper, "AM") || strings.Contains(upper, "PM")
}
