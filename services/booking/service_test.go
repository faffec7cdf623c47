package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	"barberbook/models"
	"barberbook/services/schedule"
	"barberbook/utils"
)

const (
	testBarberID = "barber-1"
	testShopID   = "shop-1"
	testUserID   = "user-1"
	testDate     = "2026-09-07" // a Monday
)

// fakeBarberRepo is an in-memory slot ledger with the same version-conflict
// semantics as the Mongo implementation.
type fakeBarberRepo struct {
	mu     sync.Mutex
	barber models.Barber

	// conflictsRemaining simulates another instance winning the version race:
	// while positive, each commit attempt bumps the stored version first and
	// reports a conflict.
	conflictsRemaining int
}

func (f *fakeBarberRepo) Create(ctx context.Context, b *models.Barber) error { return nil }
func (f *fakeBarberRepo) Update(ctx context.Context, b *models.Barber) error { return nil }
func (f *fakeBarberRepo) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeBarberRepo) GetByShop(ctx context.Context, shopID string) ([]models.Barber, error) {
	return nil, nil
}
func (f *fakeBarberRepo) GetAll(ctx context.Context) ([]models.Barber, error) {
	return []models.Barber{f.barber}, nil
}
func (f *fakeBarberRepo) UpdateWorkingHours(ctx context.Context, barberID string, cfg models.WorkingHoursConfig) error {
	return nil
}
func (f *fakeBarberRepo) ReplaceFutureAvailability(ctx context.Context, barberID, today string, entries []models.DayAvailability) error {
	return nil
}

func (f *fakeBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.barber.ID {
		return nil, barberRepo.ErrNotFound
	}
	b := f.barber
	return &b, nil
}

func (f *fakeBarberRepo) GetDayAvailability(ctx context.Context, barberID, date string) (*models.DayAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if barberID != f.barber.ID {
		return nil, barberRepo.ErrNotFound
	}
	for _, day := range f.barber.Availability {
		if day.Date == date {
			out := day
			out.Slots = append([]models.Slot(nil), day.Slots...)
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeBarberRepo) CommitDayAvailability(ctx context.Context, barberID string, day models.DayAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if barberID != f.barber.ID {
		return barberRepo.ErrNotFound
	}
	for i := range f.barber.Availability {
		if f.barber.Availability[i].Date != day.Date {
			continue
		}
		if f.conflictsRemaining > 0 {
			f.conflictsRemaining--
			f.barber.Availability[i].Version++
			return barberRepo.ErrVersionConflict
		}
		if f.barber.Availability[i].Version != day.Version {
			return barberRepo.ErrVersionConflict
		}
		f.barber.Availability[i].Slots = append([]models.Slot(nil), day.Slots...)
		f.barber.Availability[i].Version++
		return nil
	}
	return barberRepo.ErrVersionConflict
}

func (f *fakeBarberRepo) daySlots(date string) []models.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, day := range f.barber.Availability {
		if day.Date == date {
			return append([]models.Slot(nil), day.Slots...)
		}
	}
	return nil
}

type fakeBookingRepo struct {
	mu         sync.Mutex
	bookings   map[string]models.Booking
	failCreate bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("storage unreachable")
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	all, _ := f.ListAll(ctx)
	var out []models.Booking
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByBarber(ctx context.Context, barberID string) ([]models.Booking, error) {
	all, _ := f.ListAll(ctx)
	var out []models.Booking
	for _, b := range all {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceRepo) Update(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeServiceRepo) GetByShop(ctx context.Context, shopID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("service not found")
	}
	return &s, nil
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*DefaultBookingService, *fakeBarberRepo, *fakeBookingRepo) {
	t.Helper()

	// Monday 09:00-18:00 at 15 minutes: 36 slots.
	date, err := time.Parse(schedule.DateLayout, testDate)
	require.NoError(t, err)
	slots, err := schedule.GenerateDaySlots(models.DefaultWorkingHours(), date)
	require.NoError(t, err)
	require.Len(t, slots, 36)

	barbers := &fakeBarberRepo{
		barber: models.Barber{
			ID:           testBarberID,
			ShopID:       testShopID,
			WorkingHours: models.DefaultWorkingHours(),
			Availability: []models.DayAvailability{
				{Date: testDate, Version: 1, Slots: slots},
			},
		},
	}
	bookings := newFakeBookingRepo()
	services := &fakeServiceRepo{services: map[string]models.Service{
		"svc-haircut": {ID: "svc-haircut", Name: "Haircut", Duration: 30, Price: 20},
		"svc-beard":   {ID: "svc-beard", Name: "Beard Trim", Duration: 20, Price: 10},
	}}

	svc := &DefaultBookingService{
		Bookings:   bookings,
		Barbers:    barbers,
		Services:   services,
		Locks:      utils.NewKeyedMutex(),
		RetryLimit: 2,
	}
	return svc, barbers, bookings
}

func createRequest(slotTime string) CreateBookingRequest {
	return CreateBookingRequest{
		UserID:     testUserID,
		ShopID:     testShopID,
		BarberID:   testBarberID,
		ServiceIDs: []string{"svc-haircut", "svc-beard"},
		Date:       testDate,
		SlotTime:   slotTime,
	}
}

func bookedTimes(slots []models.Slot) []string {
	var out []string
	for _, s := range slots {
		if s.IsBooked {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestCreateBooking_EndToEnd(t *testing.T) {
	svc, barbers, _ := newTestService(t)

	// Two services totaling 50 minutes need 4 slots.
	b, err := svc.CreateBooking(context.Background(), createRequest("10:00"))
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, 50, b.TotalDuration)
	assert.Equal(t, "10:00", b.SlotTime)
	assert.Equal(t, "10:50", b.SlotEndTime)
	assert.Equal(t, testDate, b.Date)

	slots := barbers.daySlots(testDate)
	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45"}, bookedTimes(slots))
	for _, s := range slots {
		if s.IsBooked {
			assert.Equal(t, b.ID, s.BookingID)
		}
	}
}

func TestCreateBooking_Accepts12HourStart(t *testing.T) {
	svc, _, _ := newTestService(t)

	b, err := svc.CreateBooking(context.Background(), createRequest("10:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, "10:00", b.SlotTime)
}

func TestCreateBooking_NoAvailabilityForDate(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := createRequest("10:00")
	req.Date = "2026-09-08"
	_, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeNoAvailability))
}

func TestCreateBooking_SlotUnavailable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, createRequest("10:00"))
	require.NoError(t, err)

	// 09:45 needs 09:45-10:30; 10:00 onward is taken.
	_, err = svc.CreateBooking(ctx, createRequest("09:45"))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeSlotUnavailable))
}

func TestCreateBooking_UnknownStartTime(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateBooking(context.Background(), createRequest("08:00"))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeSlotUnavailable))
}

func TestCreateBooking_RunPastEndOfDay(t *testing.T) {
	svc, _, _ := newTestService(t)

	// 17:45 is the last slot; 50 minutes cannot fit.
	_, err := svc.CreateBooking(context.Background(), createRequest("17:45"))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeSlotUnavailable))
}

func TestCreateBooking_RollbackWhenPersistFails(t *testing.T) {
	svc, barbers, bookings := newTestService(t)
	bookings.failCreate = true

	_, err := svc.CreateBooking(context.Background(), createRequest("10:00"))
	require.Error(t, err)

	// Neither the booking nor the claim is observable.
	assert.Empty(t, bookings.bookings)
	assert.Empty(t, bookedTimes(barbers.daySlots(testDate)))
}

func TestCreateBooking_RetriesLostVersionRace(t *testing.T) {
	svc, barbers, _ := newTestService(t)
	barbers.conflictsRemaining = 1

	b, err := svc.CreateBooking(context.Background(), createRequest("10:00"))
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45"}, bookedTimes(barbers.daySlots(testDate)))
	assert.Equal(t, 50, b.TotalDuration)
}

func TestCreateBooking_ClaimConflictAfterRetriesExhausted(t *testing.T) {
	svc, barbers, _ := newTestService(t)
	barbers.conflictsRemaining = 10

	_, err := svc.CreateBooking(context.Background(), createRequest("10:00"))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeClaimConflict))
}

func TestCancelBooking_RoundTripRestoresSlots(t *testing.T) {
	svc, barbers, _ := newTestService(t)
	ctx := context.Background()

	before := barbers.daySlots(testDate)
	b, err := svc.CreateBooking(ctx, createRequest("10:00"))
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	after := barbers.daySlots(testDate)
	assert.Equal(t, before, after)
}

func TestCancelBooking_OwnershipChecked(t *testing.T) {
	svc, barbers, bookings := newTestService(t)
	ctx := context.Background()

	b1, err := svc.CreateBooking(ctx, createRequest("10:00"))
	require.NoError(t, err)

	// A booking record covering the same run that never claimed any slots.
	stray := models.Booking{
		ID:            "stray-booking",
		UserID:        testUserID,
		ShopID:        testShopID,
		BarberID:      testBarberID,
		Date:          testDate,
		SlotTime:      "10:00",
		TotalDuration: 50,
		Status:        models.BookingStatusPending,
	}
	bookings.bookings[stray.ID] = stray

	_, err = svc.CancelBooking(ctx, stray.ID)
	require.NoError(t, err)

	// B1's slots are untouched.
	slots := barbers.daySlots(testDate)
	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45"}, bookedTimes(slots))
	for _, s := range slots {
		if s.IsBooked {
			assert.Equal(t, b1.ID, s.BookingID)
		}
	}
}

func TestCancelBooking_Idempotent(t *testing.T) {
	svc, barbers, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, createRequest("10:00"))
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	afterFirst := barbers.daySlots(testDate)

	again, err := svc.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, again.Status)
	assert.Equal(t, afterFirst, barbers.daySlots(testDate))
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CancelBooking(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeNotFound))
}

func TestConcurrentClaims_SingleWinner(t *testing.T) {
	svc, barbers, _ := newTestService(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := createRequest("11:00")
			req.UserID = fmt.Sprintf("user-%d", n)
			_, err := svc.CreateBooking(ctx, req)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
			continue
		}
		ok := HasCode(err, CodeSlotUnavailable) || HasCode(err, CodeClaimConflict)
		assert.True(t, ok, "unexpected error: %v", err)
	}
	assert.Equal(t, 1, winners)

	// Final occupancy is exactly the winner's run: 50 minutes = 4 slots.
	assert.Len(t, bookedTimes(barbers.daySlots(testDate)), 4)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, createRequest("10:00"))
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	completed, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)

	_, err = svc.UpdateStatus(ctx, b.ID, models.BookingStatusConfirmed)
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeInvalidState))
}

func TestUpdateStatus_CancelDelegates(t *testing.T) {
	svc, barbers, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, createRequest("10:00"))
	require.NoError(t, err)

	cancelled, err := svc.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Empty(t, bookedTimes(barbers.daySlots(testDate)))
}
