package booking_validator_service

import (
	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

// Все три проверки пересечений одинаковой формы:
// пересекает ли предлагаемый интервал хоть одного кандидата после фильтра.

// Функция для проверки пересечения с бронями на том же корте
func hasBookingConflict(proposed domain.TimeInterval, courtID uuid.UUID, bookings []domain.Booking, excludeID uuid.UUID) bool {
	for _, booking := range bookings {
		if booking.CourtID != courtID {
			continue
		}
		if !booking.Status.ActiveForConflictCheck() {
			continue
		}
		if excludeID != uuid.Nil && booking.ID == excludeID {
			continue
		}
		if proposed.Overlaps(booking.Interval) {
			return true
		}
	}
	return false
}

// Функция для проверки пересечения с блокировками корта.
// У блокировок нет статуса, они действуют всегда.
func hasBlockConflict(proposed domain.TimeInterval, courtID uuid.UUID, blocks []domain.MaintenanceBlock) bool {
	for _, block := range blocks {
		if !block.AppliesTo(courtID) {
			continue
		}
		if proposed.Overlaps(block.Interval) {
			return true
		}
	}
	return false
}

// Функция для проверки занятости тренера.
// Тренер не может вести две брони одновременно, корт при этом не важен.
func hasCoachConflict(proposed domain.TimeInterval, coachID uuid.UUID, bookings []domain.Booking, excludeID uuid.UUID) bool {
	if coachID == uuid.Nil {
		return false
	}

	for _, booking := range bookings {
		if booking.CoachID != coachID {
			continue
		}
		if !booking.Status.ActiveForConflictCheck() {
			continue
		}
		if excludeID != uuid.Nil && booking.ID == excludeID {
			continue
		}
		if proposed.Overlaps(booking.Interval) {
			return true
		}
	}
	return false
}
