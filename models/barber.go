package models

import "time"

// Shift is a contiguous working period within a day, e.g. 09:00-13:00.
// Times are 24-hour "HH:MM" strings; within a shift, start < end.
type Shift struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// DaySchedule overrides the default working hours for one weekday.
type DaySchedule struct {
	DayOfWeek int     `bson:"dayOfWeek" json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	Shifts    []Shift `bson:"shifts" json:"shifts"`
}

// WorkingHoursConfig is a barber's recurring weekly schedule, used to
// generate future availability.
type WorkingHoursConfig struct {
	WorkingDays   []int         `bson:"workingDays" json:"workingDays"`
	DailySchedule []DaySchedule `bson:"dailySchedule,omitempty" json:"dailySchedule,omitempty"`
	DefaultStart  string        `bson:"defaultStart" json:"defaultStart"`
	DefaultEnd    string        `bson:"defaultEnd" json:"defaultEnd"`
}

// Slot is the atomic bookable unit: a fixed-width window starting at Time.
type Slot struct {
	Time      string `bson:"time" json:"time"` // 24-hour "HH:MM" start of the slot
	IsBooked  bool   `bson:"isBooked" json:"isBooked"`
	BookingID string `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
}

// DayAvailability is the full slot sequence for one barber on one calendar
// date. Date is a naive "2006-01-02" string; day equality is string equality.
// Version is bumped on every slot mutation and guards concurrent writers.
type DayAvailability struct {
	Date    string `bson:"date" json:"date"`
	Version int64  `bson:"version" json:"version"`
	Slots   []Slot `bson:"slots" json:"slots"`
}

// Barber is a staff member of a shop. The document embeds the working-hours
// configuration and the generated per-date availability.
type Barber struct {
	ID             string             `bson:"id" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	ShopID         string             `bson:"shop_id" json:"shop_id"`
	Experience     int                `bson:"experience" json:"experience"` // Years
	Specialization []string           `bson:"specialization,omitempty" json:"specialization,omitempty"`
	ProfileImage   string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	WorkingHours   WorkingHoursConfig `bson:"workingHours" json:"workingHours"`
	Availability   []DayAvailability  `bson:"availability" json:"availability,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// DefaultWorkingHours returns the fallback schedule: Monday to Saturday,
// 09:00-18:00.
func DefaultWorkingHours() WorkingHoursConfig {
	return WorkingHoursConfig{
		WorkingDays:  []int{1, 2, 3, 4, 5, 6},
		DefaultStart: "09:00",
		DefaultEnd:   "18:00",
	}
}
