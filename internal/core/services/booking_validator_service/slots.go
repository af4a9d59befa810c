package booking_validator_service

import (
	"time"

	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/utils"
)

// GenerateDaySlots возвращает сетку слотов фиксированной ширины в пределах
// часов работы корта на дату. Курсор идет от открытия с шагом ширины слота,
// неполный хвостовой слот не выдается. День без записи в расписании — пусто.
func GenerateDaySlots(date time.Time, intervalMinutes int, court *domain.Court, loc *time.Location) ([]domain.TimeInterval, error) {
	if intervalMinutes <= 0 {
		return nil, nil
	}

	localDate := date.In(loc)
	hours, open := court.OpenHoursFor(localDate.Weekday())
	if !open {
		return nil, nil
	}

	openAt, err := utils.CombineDateAndClock(localDate, hours.Open, loc)
	if err != nil {
		return nil, err
	}
	closeAt, err := utils.CombineDateAndClock(localDate, hours.Close, loc)
	if err != nil {
		return nil, err
	}

	width := time.Duration(intervalMinutes) * time.Minute

	slots := make([]domain.TimeInterval, 0)
	for cursor := openAt; !cursor.Add(width).After(closeAt); cursor = cursor.Add(width) {
		slots = append(slots, domain.TimeInterval{
			Start: cursor,
			End:   cursor.Add(width),
		})
	}

	return slots, nil
}

// applyOccupancy помечает слоты, пересекающиеся с активными бронями или
// блокировками, как занятые
func applyOccupancy(slots []domain.Slot, bookings []domain.Booking, blocks []domain.MaintenanceBlock, court domain.Court) {
	for i := range slots {
		slot := &slots[i]

		for _, booking := range bookings {
			if booking.CourtID != court.ID {
				continue
			}
			if !booking.Status.ActiveForConflictCheck() {
				continue
			}
			if slot.Interval.Overlaps(booking.Interval) {
				slot.Status = domain.SlotStatusOccupied
				slot.BookingIDS = append(slot.BookingIDS, booking.ID)
			}
		}

		for _, block := range blocks {
			if !block.AppliesTo(court.ID) {
				continue
			}
			if slot.Interval.Overlaps(block.Interval) {
				slot.Status = domain.SlotStatusOccupied
			}
		}
	}
}
