package booking_validator_service

import (
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

// respectsBuffer проверяет, что предлагаемый интервал держит минимальный зазор
// от подтвержденных броней на том же корте. Нарушение, если начало попадает в
// [конец_брони, конец_брони+буфер) или конец попадает в (начало_брони-буфер, начало_брони].
func respectsBuffer(proposed domain.TimeInterval, courtID uuid.UUID, bufferMinutes int, bookings []domain.Booking, excludeID uuid.UUID) bool {
	if bufferMinutes == 0 {
		return true
	}

	buffer := time.Duration(bufferMinutes) * time.Minute

	for _, booking := range bookings {
		if booking.CourtID != courtID {
			continue
		}
		if !booking.Status.CountsForBuffer() {
			continue
		}
		if excludeID != uuid.Nil && booking.ID == excludeID {
			continue
		}

		// Слишком рано после предыдущей брони
		afterEnd := booking.Interval.End
		if !proposed.Start.Before(afterEnd) && proposed.Start.Before(afterEnd.Add(buffer)) {
			return false
		}

		// Слишком близко перед следующей бронью
		beforeStart := booking.Interval.Start
		if proposed.End.After(beforeStart.Add(-buffer)) && !proposed.End.After(beforeStart) {
			return false
		}
	}

	return true
}
