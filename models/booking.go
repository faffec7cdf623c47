package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment captures how a booking is paid for. Capture itself happens in an
// external payment service; only the record lives here.
type Payment struct {
	Method string  `bson:"method" json:"method"` // e.g. "cash", "card", "upi"
	Amount float64 `bson:"amount" json:"amount"`
	Status string  `bson:"status" json:"status"` // "pending", "paid", "refunded"
}

// Booking represents a confirmed reservation of consecutive slots with one
// barber. The occupied slots are derived from SlotTime and TotalDuration,
// never stored.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	ShopID        string    `bson:"shop_id" json:"shop_id"`
	BarberID      string    `bson:"barber_id" json:"barber_id"`
	Services      []string  `bson:"services" json:"services"`           // Service IDs
	Date          string    `bson:"date" json:"date"`                   // "2006-01-02"
	SlotTime      string    `bson:"slot_time" json:"slot_time"`         // 24-hour "HH:MM"
	SlotEndTime   string    `bson:"slot_end_time" json:"slot_end_time"` // Derived at creation
	TotalDuration int       `bson:"total_duration" json:"total_duration"`
	Status        string    `bson:"status" json:"status"`
	Payment       Payment   `bson:"payment" json:"payment"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at,omitzero"`
}
