package barberRepo

import (
	"context"
	"errors"

	"barberbook/models"
)

// ErrNotFound is returned when a barber or availability entry does not exist.
var ErrNotFound = errors.New("barber not found")

// ErrVersionConflict is returned by CommitDayAvailability when the day's
// version changed since it was read, meaning a concurrent writer won.
var ErrVersionConflict = errors.New("availability version conflict")

// BarberRepository provides access to barber documents, including the
// embedded slot ledger. All slot occupancy flips go through
// CommitDayAvailability; no other path mutates isBooked.
type BarberRepository interface {
	Create(ctx context.Context, barber *models.Barber) error
	GetByID(ctx context.Context, id string) (*models.Barber, error)
	GetAll(ctx context.Context) ([]models.Barber, error)
	GetByShop(ctx context.Context, shopID string) ([]models.Barber, error)
	Update(ctx context.Context, barber *models.Barber) error
	Delete(ctx context.Context, id string) error

	// Working hours and the slot ledger.
	UpdateWorkingHours(ctx context.Context, barberID string, cfg models.WorkingHoursConfig) error
	GetDayAvailability(ctx context.Context, barberID, date string) (*models.DayAvailability, error)

	// ReplaceFutureAvailability drops every availability entry dated today or
	// later and appends the freshly generated entries. Past entries are
	// immutable history and stay untouched.
	ReplaceFutureAvailability(ctx context.Context, barberID, today string, entries []models.DayAvailability) error

	// CommitDayAvailability persists a mutated slot array for one date,
	// conditional on day.Version still matching the stored version.
	CommitDayAvailability(ctx context.Context, barberID string, day models.DayAvailability) error
}
