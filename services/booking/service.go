package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
	"barberbook/services/schedule"
	"barberbook/utils"
)

// DefaultBookingService is the production implementation of BookingService.
// All slot-ledger writes go through the per-barber keyed mutex plus the
// ledger's version check, so concurrent claims for the same day cannot
// double-book.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Barbers  barberRepo.BarberRepository
	Services serviceRepo.ServiceRepository
	Cache    *redis.Client
	Locks    *utils.KeyedMutex

	// RetryLimit bounds re-attempts after a lost version race. Zero means
	// a single attempt with no retry.
	RetryLimit int
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.UserID == "" || req.ShopID == "" || req.BarberID == "" ||
		len(req.ServiceIDs) == 0 || req.Date == "" || req.SlotTime == "" {
		return nil, NewInvalidInputError("missing required booking fields")
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}

	services, err := s.Services.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve services: %w", err)
	}
	if len(services) == 0 {
		return nil, NewNotFoundError("services", fmt.Sprintf("%v", req.ServiceIDs))
	}
	totalDuration := schedule.TotalDuration(services)
	if totalDuration <= 0 {
		return nil, NewInvalidInputError("selected services have no duration")
	}

	slotTime := req.SlotTime
	if schedule.Is12Hour(slotTime) {
		slotTime, err = schedule.To24Hour(slotTime)
		if err != nil {
			return nil, NewInvalidInputError(err.Error())
		}
	} else if _, err := schedule.TimeToMinutes(slotTime); err != nil {
		return nil, NewInvalidInputError(err.Error())
	}

	slotEndTime, err := schedule.AddMinutes(slotTime, totalDuration)
	if err != nil {
		return nil, NewInvalidInputError(err.Error())
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		ShopID:        req.ShopID,
		BarberID:      req.BarberID,
		Services:      req.ServiceIDs,
		Date:          date,
		SlotTime:      slotTime,
		SlotEndTime:   slotEndTime,
		TotalDuration: totalDuration,
		Status:        models.BookingStatusPending,
		Payment:       req.Payment,
		CreatedAt:     time.Now(),
	}
	if booking.Payment.Method == "" {
		booking.Payment = models.Payment{Method: "cash", Status: "pending"}
	}

	unlock := s.Locks.Lock(req.BarberID)
	defer unlock()

	if err := s.claimSlots(ctx, req.BarberID, date, slotTime, totalDuration, booking.ID); err != nil {
		return nil, err
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		// The slots are claimed but the booking record failed to persist;
		// release the claim so neither side of the write is observable.
		s.releaseSlots(ctx, req.BarberID, date, slotTime, totalDuration, booking.ID)
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.invalidateCache(ctx, req.BarberID, date)
	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("barberId", req.BarberID),
		zap.String("date", date),
		zap.String("slotTime", slotTime),
		zap.Int("totalDuration", totalDuration),
	)
	return booking, nil
}

// claimSlots validates and marks the consecutive run for a booking, retrying
// a bounded number of times when another writer wins the version race.
// Callers must hold the barber's keyed mutex.
func (s *DefaultBookingService) claimSlots(ctx context.Context, barberID, date, startTime string, durationMinutes int, bookingID string) error {
	for attempt := 0; attempt <= s.RetryLimit; attempt++ {
		day, err := s.Barbers.GetDayAvailability(ctx, barberID, date)
		if err != nil {
			if errors.Is(err, barberRepo.ErrNotFound) {
				return NewNotFoundError("barber", barberID)
			}
			return fmt.Errorf("failed to load availability: %w", err)
		}
		if day == nil {
			return NewNoAvailabilityError(date)
		}

		if !schedule.HasConsecutiveSlots(day.Slots, startTime, durationMinutes) {
			return NewSlotUnavailableError(startTime, durationMinutes)
		}

		times, err := schedule.SlotsToBook(day.Slots, startTime, durationMinutes)
		if err != nil {
			return fmt.Errorf("slot run computation failed after availability check: %w", err)
		}
		markSlots(day.Slots, times, bookingID)

		err = s.Barbers.CommitDayAvailability(ctx, barberID, *day)
		if err == nil {
			return nil
		}
		if !errors.Is(err, barberRepo.ErrVersionConflict) {
			return fmt.Errorf("failed to commit slot claim: %w", err)
		}
		utils.GetLogger().Warn("slot claim lost version race, retrying",
			zap.String("barberId", barberID),
			zap.String("date", date),
			zap.Int("attempt", attempt+1),
		)
	}
	return NewClaimConflictError(startTime)
}

// releaseSlots frees the slots of a booking's run, touching only slots still
// owned by that booking. Safe to call for already-released or reassigned
// slots. Callers must hold the barber's keyed mutex.
func (s *DefaultBookingService) releaseSlots(ctx context.Context, barberID, date, startTime string, durationMinutes int, bookingID string) {
	logger := utils.GetLogger()

	for attempt := 0; attempt <= s.RetryLimit+1; attempt++ {
		day, err := s.Barbers.GetDayAvailability(ctx, barberID, date)
		if err != nil || day == nil {
			// The availability entry may have been regenerated away; there
			// is nothing left to release.
			return
		}

		times, err := schedule.SlotsToBook(day.Slots, startTime, durationMinutes)
		if err != nil {
			return
		}

		if !unmarkOwnedSlots(day.Slots, times, bookingID) {
			return
		}

		err = s.Barbers.CommitDayAvailability(ctx, barberID, *day)
		if err == nil {
			s.invalidateCache(ctx, barberID, date)
			return
		}
		if !errors.Is(err, barberRepo.ErrVersionConflict) {
			logger.Error("failed to release slots",
				zap.String("bookingId", bookingID),
				zap.String("barberId", barberID),
				zap.Error(err),
			)
			return
		}
	}
	logger.Error("gave up releasing slots after repeated version conflicts",
		zap.String("bookingId", bookingID),
		zap.String("barberId", barberID),
		zap.String("date", date),
	)
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking", bookingID)
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	// Cancelling twice is a no-op, not an error.
	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}

	unlock := s.Locks.Lock(booking.BarberID)
	defer unlock()

	booking.Status = models.BookingStatusCancelled
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.releaseSlots(ctx, booking.BarberID, booking.Date, booking.SlotTime, booking.TotalDuration, booking.ID)
	s.invalidateCache(ctx, booking.BarberID, booking.Date)

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", booking.ID),
		zap.String("barberId", booking.BarberID),
		zap.String("date", booking.Date),
	)
	return booking, nil
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	if status == models.BookingStatusCancelled {
		return s.CancelBooking(ctx, bookingID)
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking", bookingID)
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if !canTransition(booking.Status, status) {
		return nil, NewInvalidStateError(booking.Status, status)
	}

	booking.Status = status
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking", bookingID)
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.ListAll(ctx)
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListBarberBookings(ctx context.Context, barberID string) ([]models.Booking, error) {
	return s.Bookings.ListByBarber(ctx, barberID)
}

func (s *DefaultBookingService) invalidateCache(ctx context.Context, barberID, date string) {
	if s.Cache == nil {
		return
	}
	utils.InvalidateAvailabilityCache(ctx, s.Cache, barberID, date)
}

// canTransition enforces the booking lifecycle: pending -> confirmed ->
// completed. Cancellation is handled separately.
func canTransition(from, to string) bool {
	switch to {
	case models.BookingStatusConfirmed:
		return from == models.BookingStatusPending
	case models.BookingStatusCompleted:
		return from == models.BookingStatusPending || from == models.BookingStatusConfirmed
	default:
		return false
	}
}

func markSlots(slots []models.Slot, times []string, bookingID string) {
	for _, tm := range times {
		for i := range slots {
			if slots[i].Time == tm {
				slots[i].IsBooked = true
				slots[i].BookingID = bookingID
			}
		}
	}
}

// unmarkOwnedSlots frees only slots still referencing bookingID and reports
// whether anything changed.
func unmarkOwnedSlots(slots []models.Slot, times []string, bookingID string) bool {
	changed := false
	for _, tm := range times {
		for i := range slots {
			if slots[i].Time == tm && slots[i].BookingID == bookingID {
				slots[i].IsBooked = false
				slots[i].BookingID = ""
				changed = true
			}
		}
	}
	return changed
}

// normalizeDate reduces any accepted date form to the naive calendar-day
// string used by the availability store.
func normalizeDate(raw string) (string, error) {
	if t, err := time.Parse(schedule.DateLayout, raw); err == nil {
		return t.Format(schedule.DateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(schedule.DateLayout), nil
	}
	return "", NewInvalidInputError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
}
