package booking_validator_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/in"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/out"
	"github.com/suchimauz/court-booking-engine/internal/utils"
)

type BookingValidatorService struct {
	platformPort out.PlatformPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config
}

func NewBookingValidatorService(
	platformPort out.PlatformPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	cfg *config.Config,
) *BookingValidatorService {
	return &BookingValidatorService{
		platformPort: platformPort,
		cachePort:    cachePort,
		logger:       logger.WithModule("BookingValidatorService"),
		cfg:          cfg,
	}
}

func (s *BookingValidatorService) ValidateBooking(ctx context.Context, req in.ValidateBookingRequest) (*domain.ValidationResult, []domain.DebugInfo, error) {
	debugInfo := BookingValidatorServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}
	s.logger.Info("validate.booking.started", out.LogFields{
		"courtId": req.CourtID,
		"start":   req.Interval.Start,
		"end":     req.Interval.End,
	})

	fetch_court_debug := domain.DebugInfo{
		Event: "validate.booking.court.fetch",
	}
	fetch_court_debug.Start()

	court, err := s.getCourt(ctx, req.CourtID)
	if err != nil {
		s.logger.Error("validate.booking.court.fetch_failed", out.LogFields{
			"courtId": req.CourtID,
			"error":   err.Error(),
		})
		return nil, nil, fmt.Errorf("validate.booking.court.fetch_failed: %w", err)
	}
	fetch_court_debug.Elapse()
	debugInfo.AddDebugInfo(fetch_court_debug)

	location, err := s.getOrgLocation(ctx, req.OrgID)
	if err != nil {
		s.logger.Error("validate.booking.location.fetch_failed", out.LogFields{
			"orgId": req.OrgID,
			"error": err.Error(),
		})
		return nil, nil, fmt.Errorf("validate.booking.location.fetch_failed: %w", err)
	}

	// Окно выборки кандидатов покрывает проверяемый интервал плюс буфер с обеих сторон
	buffer := time.Duration(s.cfg.Booking.BufferMinutes) * time.Minute
	fetchStart := req.Interval.Start.Add(-buffer)
	fetchEnd := req.Interval.End.Add(buffer)
	// Перевернутый интервал сам по себе нарушение, но кандидатов все равно
	// выбираем по вменяемому окну, чтобы остальные проверки отработали
	if fetchEnd.Before(fetchStart) {
		fetchStart, fetchEnd = fetchEnd, fetchStart
	}

	fetch_candidates_debug := domain.DebugInfo{
		Event: "validate.booking.candidates.fetch",
	}
	fetch_candidates_debug.Start()

	bookings, err := s.platformPort.GetCourtBookings(ctx, req.CourtID, fetchStart, fetchEnd)
	if err != nil {
		s.logger.Error("validate.booking.candidates.fetch_failed", out.LogFields{
			"courtId": req.CourtID,
			"error":   err.Error(),
		})
		return nil, nil, fmt.Errorf("validate.booking.candidates.fetch_failed: %w", err)
	}

	// Брони тренера могут лежать на других кортах, добираем их отдельно
	if req.CoachID != uuid.Nil {
		coachBookings, err := s.platformPort.GetCoachBookings(ctx, req.CoachID, fetchStart, fetchEnd)
		if err != nil {
			s.logger.Error("validate.booking.coach_candidates.fetch_failed", out.LogFields{
				"coachId": req.CoachID,
				"error":   err.Error(),
			})
			return nil, nil, fmt.Errorf("validate.booking.coach_candidates.fetch_failed: %w", err)
		}
		bookings = mergeBookings(bookings, coachBookings)
	}

	blocks, err := s.platformPort.GetMaintenanceBlocks(ctx, req.CourtID, fetchStart, fetchEnd)
	if err != nil {
		s.logger.Error("validate.booking.blocks.fetch_failed", out.LogFields{
			"courtId": req.CourtID,
			"error":   err.Error(),
		})
		return nil, nil, fmt.Errorf("validate.booking.blocks.fetch_failed: %w", err)
	}

	fetch_candidates_debug.Elapse()
	fetch_candidates_debug.AddOption("bookings", fmt.Sprintf("%d", len(bookings)))
	fetch_candidates_debug.AddOption("blocks", fmt.Sprintf("%d", len(blocks)))
	debugInfo.AddDebugInfo(fetch_candidates_debug)

	validate_debug := domain.DebugInfo{
		Event: "validate.booking.checks",
	}
	validate_debug.Start()

	result, err := Validate(ValidationInput{
		CourtID:           req.CourtID,
		Interval:          req.Interval,
		Court:             court,
		Location:          *location,
		BookingWindowDays: s.cfg.Booking.WindowDays,
		BufferMinutes:     s.cfg.Booking.BufferMinutes,
		Bookings:          bookings,
		Blocks:            blocks,
		CoachID:           req.CoachID,
		ExcludeBookingID:  req.ExcludeBookingID,
		Now:               time.Now(),
	})
	if err != nil {
		s.logger.Error("validate.booking.checks_failed", out.LogFields{
			"courtId": req.CourtID,
			"error":   err.Error(),
		})
		return nil, nil, fmt.Errorf("validate.booking.checks_failed: %w", err)
	}

	validate_debug.Elapse()
	debugInfo.AddDebugInfo(validate_debug)

	s.logger.Info("validate.booking.finished", out.LogFields{
		"courtId": req.CourtID,
		"valid":   result.Valid,
		"errors":  len(result.Errors),
	})

	return result, debugInfo.data, nil
}

func (s *BookingValidatorService) GetDaySlots(ctx context.Context, orgID uuid.UUID, courtID uuid.UUID, date time.Time, intervalMinutes int) ([]domain.Slot, error) {
	if intervalMinutes <= 0 {
		intervalMinutes = s.cfg.Booking.SlotIntervalMinutes
	}

	location, err := s.getOrgLocation(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("slots.day.location.fetch_failed: %w", err)
	}

	loc, err := time.LoadLocation(location.Timezone)
	if err != nil {
		return nil, fmt.Errorf("slots.day.load_location_failed: %w", err)
	}

	dayStart := utils.StartCurrentDay(date.In(loc))

	// Кэшируем только сетку с дефолтной шириной слота,
	// ключ кэша ширину не различает
	cacheable := s.cachePort != nil && s.cfg.Cache.Enabled && intervalMinutes == s.cfg.Booking.SlotIntervalMinutes
	if cacheable {
		if slots, exists := s.cachePort.GetDaySlots(ctx, courtID, dayStart); exists {
			s.logger.Debug("slots.day.cache.hit", out.LogFields{
				"courtId":    courtID,
				"slotsCount": len(slots),
			})
			return slots, nil
		}
		s.logger.Debug("slots.day.cache.miss", out.LogFields{
			"courtId": courtID,
		})
	}

	court, err := s.getCourt(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("slots.day.court.fetch_failed: %w", err)
	}

	intervals, err := GenerateDaySlots(dayStart, intervalMinutes, court, loc)
	if err != nil {
		return nil, fmt.Errorf("slots.day.generate_failed: %w", err)
	}

	dayEnd := utils.StartNextDay(dayStart)

	bookings, err := s.platformPort.GetCourtBookings(ctx, courtID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("slots.day.bookings.fetch_failed: %w", err)
	}
	blocks, err := s.platformPort.GetMaintenanceBlocks(ctx, courtID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("slots.day.blocks.fetch_failed: %w", err)
	}

	slots := make([]domain.Slot, 0, len(intervals))
	for _, interval := range intervals {
		slots = append(slots, domain.Slot{
			Interval: interval,
			Week:     domain.DaysOfWeekMap[interval.Start.In(loc).Weekday()],
			Status:   domain.SlotStatusFree,
		})
	}

	applyOccupancy(slots, bookings, blocks, *court)

	slots = SlotSlice(slots).quickSort()

	if cacheable {
		s.cachePort.StoreDaySlots(ctx, courtID, dayStart, slots)
	}

	return slots, nil
}

func (s *BookingValidatorService) HandleResourceEvent(ctx context.Context, event in.ResourceEvent) error {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return nil
	}

	s.logger.Debug("resource_event.received", out.LogFields{
		"resourceType": event.ResourceType,
		"resourceId":   event.ResourceID,
	})

	switch event.ResourceType {
	case in.ResourceTypeBooking, in.ResourceTypeMaintenanceBlock:
		// Без привязки к корту остается только сбросить все сетки
		if event.CourtID == uuid.Nil {
			s.cachePort.InvalidateAll(ctx)
			return nil
		}
		s.cachePort.InvalidateDaySlots(ctx, event.CourtID)
	case in.ResourceTypeCourt:
		s.cachePort.InvalidateCourt(ctx, event.ResourceID)
		s.cachePort.InvalidateDaySlots(ctx, event.ResourceID)
	case in.ResourceTypeOrganization:
		s.cachePort.InvalidateOrgLocation(ctx, event.ResourceID)
	default:
		s.cachePort.InvalidateAll(ctx)
	}

	return nil
}

// Кэш-обертки над platformPort

func (s *BookingValidatorService) getCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if court, exists := s.cachePort.GetCourt(ctx, courtID); exists {
			return court, nil
		}
		s.logger.Debug("court.cache.miss", out.LogFields{
			"courtId": courtID,
		})
	}

	court, err := s.platformPort.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreCourt(ctx, *court)
	}

	return court, nil
}

func (s *BookingValidatorService) getOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if location, exists := s.cachePort.GetOrgLocation(ctx, orgID); exists {
			return location, nil
		}
		s.logger.Debug("org_location.cache.miss", out.LogFields{
			"orgId": orgID,
		})
	}

	location, err := s.platformPort.GetOrgLocation(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreOrgLocation(ctx, *location)
	}

	return location, nil
}

// mergeBookings объединяет два списка броней без дублей по ID
func mergeBookings(a, b []domain.Booking) []domain.Booking {
	seen := make(map[uuid.UUID]struct{}, len(a))
	merged := make([]domain.Booking, 0, len(a)+len(b))

	for _, booking := range a {
		seen[booking.ID] = struct{}{}
		merged = append(merged, booking)
	}
	for _, booking := range b {
		if _, ok := seen[booking.ID]; ok {
			continue
		}
		merged = append(merged, booking)
	}

	return merged
}
