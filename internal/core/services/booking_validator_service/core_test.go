package booking_validator_service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/in"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/out"
)

type stubPlatform struct {
	court    *domain.Court
	location *domain.OrgLocation
	bookings []domain.Booking
	blocks   []domain.MaintenanceBlock

	courtFetches    int
	bookingsFetches int
}

func (p *stubPlatform) GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error) {
	p.courtFetches++
	return p.court, nil
}

func (p *stubPlatform) GetOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, error) {
	return p.location, nil
}

func (p *stubPlatform) GetCourtBookings(ctx context.Context, courtID uuid.UUID, startDate, endDate time.Time) ([]domain.Booking, error) {
	p.bookingsFetches++
	return p.bookings, nil
}

func (p *stubPlatform) GetCoachBookings(ctx context.Context, coachID uuid.UUID, startDate, endDate time.Time) ([]domain.Booking, error) {
	return nil, nil
}

func (p *stubPlatform) GetMaintenanceBlocks(ctx context.Context, courtID uuid.UUID, startDate, endDate time.Time) ([]domain.MaintenanceBlock, error) {
	return p.blocks, nil
}

type stubCache struct {
	courts    map[uuid.UUID]*domain.Court
	locations map[uuid.UUID]*domain.OrgLocation
	daySlots  map[string][]domain.Slot

	invalidatedCourts    []uuid.UUID
	invalidatedLocations []uuid.UUID
	invalidatedSlots     []uuid.UUID
	invalidatedAll       int
}

func newStubCache() *stubCache {
	return &stubCache{
		courts:    make(map[uuid.UUID]*domain.Court),
		locations: make(map[uuid.UUID]*domain.OrgLocation),
		daySlots:  make(map[string][]domain.Slot),
	}
}

func slotsKey(courtID uuid.UUID, date time.Time) string {
	return courtID.String() + "|" + date.Format("2006-01-02")
}

func (c *stubCache) GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, bool) {
	court, ok := c.courts[courtID]
	return court, ok
}

func (c *stubCache) StoreCourt(ctx context.Context, court domain.Court) {
	c.courts[court.ID] = &court
}

func (c *stubCache) InvalidateCourt(ctx context.Context, courtID uuid.UUID) {
	delete(c.courts, courtID)
	c.invalidatedCourts = append(c.invalidatedCourts, courtID)
}

func (c *stubCache) GetOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, bool) {
	location, ok := c.locations[orgID]
	return location, ok
}

func (c *stubCache) StoreOrgLocation(ctx context.Context, location domain.OrgLocation) {
	c.locations[location.OrgID] = &location
}

func (c *stubCache) InvalidateOrgLocation(ctx context.Context, orgID uuid.UUID) {
	delete(c.locations, orgID)
	c.invalidatedLocations = append(c.invalidatedLocations, orgID)
}

func (c *stubCache) GetDaySlots(ctx context.Context, courtID uuid.UUID, date time.Time) ([]domain.Slot, bool) {
	slots, ok := c.daySlots[slotsKey(courtID, date)]
	return slots, ok
}

func (c *stubCache) StoreDaySlots(ctx context.Context, courtID uuid.UUID, date time.Time, slots []domain.Slot) {
	c.daySlots[slotsKey(courtID, date)] = slots
}

func (c *stubCache) InvalidateDaySlots(ctx context.Context, courtID uuid.UUID) {
	c.invalidatedSlots = append(c.invalidatedSlots, courtID)
}

func (c *stubCache) InvalidateAll(ctx context.Context) {
	c.invalidatedAll++
}

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields) {}
func (l nopLogger) Info(event string, fields out.LogFields)  {}
func (l nopLogger) Warn(event string, fields out.LogFields)  {}
func (l nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func testServiceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.WindowDays = 14
	cfg.Booking.BufferMinutes = 0
	cfg.Booking.SlotIntervalMinutes = 60
	return cfg
}

func TestService_ValidateBooking(t *testing.T) {
	location := testLocation()
	platform := &stubPlatform{
		court:    testCourt(),
		location: &location,
	}

	service := NewBookingValidatorService(platform, nil, nopLogger{}, testServiceConfig())

	// Дата в прошлом относительно часов сервиса проходит проверку окна,
	// ограничение действует только вперед
	result, debugInfo, err := service.ValidateBooking(context.Background(), in.ValidateBookingRequest{
		OrgID:   testOrgID,
		CourtID: testCourtID,
		Interval: domain.TimeInterval{
			Start: datetime(2026, 1, 5, 9, 0),
			End:   datetime(2026, 1, 5, 10, 0),
		},
	})

	assert.NoError(t, err)
	assert.True(t, result.Valid)
	assert.NotEmpty(t, debugInfo)
}

func TestService_GetDaySlots(t *testing.T) {
	court := testCourt()
	court.WeeklyOpenHours[domain.DayOfWeekMon] = domain.OpenHours{Open: "08:00", Close: "10:00"}

	location := testLocation()
	platform := &stubPlatform{
		court:    court,
		location: &location,
		bookings: []domain.Booking{
			booking(testCourtID, domain.BookingStatusConfirmed, [2]int{8, 0}, [2]int{9, 0}),
		},
	}

	service := NewBookingValidatorService(platform, nil, nopLogger{}, testServiceConfig())

	slots, err := service.GetDaySlots(context.Background(), testOrgID, testCourtID, datetime(2026, 1, 5, 0, 0), 60)
	assert.NoError(t, err)
	assert.Len(t, slots, 2)

	assert.Equal(t, domain.SlotStatusOccupied, slots[0].Status)
	assert.Equal(t, domain.SlotStatusFree, slots[1].Status)
	assert.Equal(t, domain.DayOfWeekMon, slots[0].Week)
}

func TestService_GetDaySlots_CachedGrid(t *testing.T) {
	location := testLocation()
	platform := &stubPlatform{
		court:    testCourt(),
		location: &location,
	}

	cfg := testServiceConfig()
	cfg.Cache.Enabled = true
	cache := newStubCache()

	service := NewBookingValidatorService(platform, cache, nopLogger{}, cfg)

	date := datetime(2026, 1, 5, 0, 0)

	first, err := service.GetDaySlots(context.Background(), testOrgID, testCourtID, date, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, platform.bookingsFetches)

	// Повторный запрос отдается из кэша, в платформу не ходим
	second, err := service.GetDaySlots(context.Background(), testOrgID, testCourtID, date, 0)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, platform.bookingsFetches)

	// Нестандартная ширина слота мимо кэша
	_, err = service.GetDaySlots(context.Background(), testOrgID, testCourtID, date, 30)
	assert.NoError(t, err)
	assert.Equal(t, 2, platform.bookingsFetches)
}

func TestService_HandleResourceEvent(t *testing.T) {
	location := testLocation()
	platform := &stubPlatform{
		court:    testCourt(),
		location: &location,
	}

	cfg := testServiceConfig()
	cfg.Cache.Enabled = true
	cache := newStubCache()

	service := NewBookingValidatorService(platform, cache, nopLogger{}, cfg)
	ctx := context.Background()

	// Изменение брони сбрасывает сетку ее корта
	err := service.HandleResourceEvent(ctx, in.ResourceEvent{
		ResourceType: in.ResourceTypeBooking,
		ResourceID:   uuid.New(),
		CourtID:      testCourtID,
	})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{testCourtID}, cache.invalidatedSlots)

	// Бронь без привязки к корту — полный сброс
	err = service.HandleResourceEvent(ctx, in.ResourceEvent{
		ResourceType: in.ResourceTypeBooking,
		ResourceID:   uuid.New(),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, cache.invalidatedAll)

	// Изменение корта сбрасывает и конфигурацию, и сетку
	err = service.HandleResourceEvent(ctx, in.ResourceEvent{
		ResourceType: in.ResourceTypeCourt,
		ResourceID:   testCourtID,
	})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{testCourtID}, cache.invalidatedCourts)
	assert.Equal(t, []uuid.UUID{testCourtID, testCourtID}, cache.invalidatedSlots)

	// Изменение организации сбрасывает локацию
	err = service.HandleResourceEvent(ctx, in.ResourceEvent{
		ResourceType: in.ResourceTypeOrganization,
		ResourceID:   testOrgID,
	})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{testOrgID}, cache.invalidatedLocations)

	// Неизвестный тип ресурса — полный сброс
	err = service.HandleResourceEvent(ctx, in.ResourceEvent{
		ResourceType: in.ResourceTypeAll,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, cache.invalidatedAll)
}

func TestService_HandleResourceEvent_CacheDisabled(t *testing.T) {
	location := testLocation()
	platform := &stubPlatform{
		court:    testCourt(),
		location: &location,
	}

	service := NewBookingValidatorService(platform, nil, nopLogger{}, testServiceConfig())

	err := service.HandleResourceEvent(context.Background(), in.ResourceEvent{
		ResourceType: in.ResourceTypeBooking,
		CourtID:      testCourtID,
	})
	assert.NoError(t, err)
}
