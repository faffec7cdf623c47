package booking

import (
	"context"

	"barberbook/models"
)

// CreateBookingRequest carries everything needed to book consecutive slots
// with one barber. SlotTime may arrive in 12-hour form from the mobile
// client; it is normalized to 24-hour form before touching the ledger.
type CreateBookingRequest struct {
	UserID     string         `json:"user_id"`
	ShopID     string         `json:"shop_id"`
	BarberID   string         `json:"barber_id"`
	ServiceIDs []string       `json:"services"`
	Date       string         `json:"date"`
	SlotTime   string         `json:"slot_time"`
	Payment    models.Payment `json:"payment"`
}

// BookingService defines the booking lifecycle operations.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListBarberBookings(ctx context.Context, barberID string) ([]models.Booking, error)
}
