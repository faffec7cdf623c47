package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/services/schedule"
	"barberbook/services/tasks"
	"barberbook/utils"
)

// GenerateResult summarizes a window regeneration.
type GenerateResult struct {
	DaysGenerated int `json:"daysGenerated"`
	SlotsCreated  int `json:"slotsCreated"`
}

// DaySlotsView is the available-slots query response: the valid start slots
// for the requested duration plus occupancy counts for the day.
type DaySlotsView struct {
	Date                string        `json:"date"`
	ServiceDuration     int           `json:"serviceDuration"`
	TotalSlots          int           `json:"totalSlots"`
	BookedSlots         int           `json:"bookedSlots"`
	AvailableStartSlots int           `json:"availableStartSlots"`
	Slots               []models.Slot `json:"slots"`
}

// AvailabilityService manages working hours and the generated slot windows.
type AvailabilityService interface {
	GetWorkingHours(ctx context.Context, barberID string) (models.WorkingHoursConfig, error)
	UpdateWorkingHours(ctx context.Context, barberID string, cfg models.WorkingHoursConfig) error
	GenerateWindow(ctx context.Context, barberID string, days int) (*GenerateResult, error)
	GetAvailableSlots(ctx context.Context, barberID, date string, durationMinutes int) (*DaySlotsView, error)
}

// DefaultAvailabilityService is the production implementation. Regeneration
// shares the per-barber keyed mutex with the booking service so it can never
// erase an in-flight claim.
type DefaultAvailabilityService struct {
	Barbers  barberRepo.BarberRepository
	Cache    *redis.Client
	Locks    *utils.KeyedMutex
	Enqueuer tasks.Enqueuer

	// WindowDays is the default regeneration horizon.
	WindowDays int
}

func (s *DefaultAvailabilityService) GetWorkingHours(ctx context.Context, barberID string) (models.WorkingHoursConfig, error) {
	barber, err := s.Barbers.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return models.WorkingHoursConfig{}, booking.NewNotFoundError("barber", barberID)
		}
		return models.WorkingHoursConfig{}, fmt.Errorf("failed to load barber: %w", err)
	}
	cfg := barber.WorkingHours
	if len(cfg.WorkingDays) == 0 && cfg.DefaultStart == "" {
		cfg = models.DefaultWorkingHours()
	}
	return cfg, nil
}

func (s *DefaultAvailabilityService) UpdateWorkingHours(ctx context.Context, barberID string, cfg models.WorkingHoursConfig) error {
	if err := validateWorkingHours(cfg); err != nil {
		return err
	}
	if err := s.Barbers.UpdateWorkingHours(ctx, barberID, cfg); err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return booking.NewNotFoundError("barber", barberID)
		}
		return fmt.Errorf("failed to update working hours: %w", err)
	}

	// Rebuild the future window off the request path; stale slots stay
	// bookable only until the worker catches up.
	if s.Enqueuer != nil {
		if err := s.Enqueuer.EnqueueRegenerate(ctx, barberID, s.WindowDays); err != nil {
			utils.GetLogger().Error("failed to enqueue availability regeneration",
				zap.String("barberId", barberID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultAvailabilityService) GenerateWindow(ctx context.Context, barberID string, days int) (*GenerateResult, error) {
	if days <= 0 {
		days = s.WindowDays
	}
	if days <= 0 {
		days = 30
	}

	barber, err := s.Barbers.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, booking.NewNotFoundError("barber", barberID)
		}
		return nil, fmt.Errorf("failed to load barber: %w", err)
	}

	cfg := barber.WorkingHours
	if len(cfg.WorkingDays) == 0 && cfg.DefaultStart == "" {
		cfg = models.DefaultWorkingHours()
	}

	today := time.Now()
	var entries []models.DayAvailability
	slotsCreated := 0
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)
		slots, err := schedule.GenerateDaySlots(cfg, date)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slots for %s: %w", date.Format(schedule.DateLayout), err)
		}
		if len(slots) == 0 {
			continue
		}
		entries = append(entries, models.DayAvailability{
			Date:    date.Format(schedule.DateLayout),
			Version: 1,
			Slots:   slots,
		})
		slotsCreated += len(slots)
	}

	// Writers for this barber are serialized: a regeneration running
	// concurrently with a claim would silently erase the claim's occupancy.
	unlock := s.Locks.Lock(barberID)
	defer unlock()

	todayStr := today.Format(schedule.DateLayout)
	if err := s.Barbers.ReplaceFutureAvailability(ctx, barberID, todayStr, entries); err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, booking.NewNotFoundError("barber", barberID)
		}
		return nil, fmt.Errorf("failed to replace availability window: %w", err)
	}

	if s.Cache != nil {
		for _, e := range entries {
			utils.InvalidateAvailabilityCache(ctx, s.Cache, barberID, e.Date)
		}
	}

	utils.GetLogger().Info("availability window regenerated",
		zap.String("barberId", barberID),
		zap.Int("days", days),
		zap.Int("daysGenerated", len(entries)),
		zap.Int("slotsCreated", slotsCreated),
	)
	return &GenerateResult{DaysGenerated: len(entries), SlotsCreated: slotsCreated}, nil
}

func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, barberID, date string, durationMinutes int) (*DaySlotsView, error) {
	if durationMinutes <= 0 {
		return nil, booking.NewInvalidInputError("service duration must be positive")
	}
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return nil, booking.NewInvalidInputError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}

	if view := s.cachedView(ctx, barberID, date, durationMinutes); view != nil {
		return view, nil
	}

	day, err := s.Barbers.GetDayAvailability(ctx, barberID, date)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, booking.NewNotFoundError("barber", barberID)
		}
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	view := &DaySlotsView{Date: date, ServiceDuration: durationMinutes}
	if day != nil {
		view.TotalSlots = len(day.Slots)
		for _, slot := range day.Slots {
			if slot.IsBooked {
				view.BookedSlots++
			}
		}
		view.Slots = schedule.AvailableStartSlots(day.Slots, durationMinutes)
		view.AvailableStartSlots = len(view.Slots)
	}

	s.storeView(ctx, barberID, view)
	return view, nil
}

func (s *DefaultAvailabilityService) cachedView(ctx context.Context, barberID, date string, durationMinutes int) *DaySlotsView {
	if s.Cache == nil {
		return nil
	}
	key := utils.AvailabilityCacheKey(barberID, date, durationMinutes)
	data, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var view DaySlotsView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil
	}
	return &view
}

func (s *DefaultAvailabilityService) storeView(ctx context.Context, barberID string, view *DaySlotsView) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	key := utils.AvailabilityCacheKey(barberID, view.Date, view.ServiceDuration)
	if err := s.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability view", zap.Error(err))
	}
}

func validateWorkingHours(cfg models.WorkingHoursConfig) error {
	for _, d := range cfg.WorkingDays {
		if d < 0 || d > 6 {
			return booking.NewInvalidInputError(fmt.Sprintf("working day %d out of range 0-6", d))
		}
	}
	checkShift := func(start, end string) error {
		s, err := schedule.TimeToMinutes(start)
		if err != nil {
			return booking.NewInvalidInputError(err.Error())
		}
		e, err := schedule.TimeToMinutes(end)
		if err != nil {
			return booking.NewInvalidInputError(err.Error())
		}
		if s >= e {
			return booking.NewInvalidInputError(fmt.Sprintf("shift start %s must be before end %s", start, end))
		}
		return nil
	}
	for _, sched := range cfg.DailySchedule {
		if sched.DayOfWeek < 0 || sched.DayOfWeek > 6 {
			return booking.NewInvalidInputError(fmt.Sprintf("schedule day %d out of range 0-6", sched.DayOfWeek))
		}
		for _, shift := range sched.Shifts {
			if err := checkShift(shift.StartTime, shift.EndTime); err != nil {
				return err
			}
		}
	}
	if cfg.DefaultStart != "" || cfg.DefaultEnd != "" {
		if err := checkShift(cfg.DefaultStart, cfg.DefaultEnd); err != nil {
			return err
		}
	}
	return nil
}
