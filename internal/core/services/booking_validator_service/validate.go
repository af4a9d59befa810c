package booking_validator_service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/utils"
)

// ValidationInput — все данные одной проверки.
// Кандидаты уже загружены вызывающей стороной, движок не делает I/O.
// Now передается явно, чтобы результат был воспроизводим на одинаковом входе.
type ValidationInput struct {
	CourtID           uuid.UUID
	Interval          domain.TimeInterval
	Court             *domain.Court
	Location          domain.OrgLocation
	BookingWindowDays int
	BufferMinutes     int
	Bookings          []domain.Booking
	Blocks            []domain.MaintenanceBlock
	CoachID           uuid.UUID
	ExcludeBookingID  uuid.UUID
	Now               time.Time
}

// Validate прогоняет заявку через все проверки в фиксированном порядке.
// Проверки не прерываются на первом нарушении: пользователь, исправив одну
// причину, должен сразу видеть следующую. Порядок сообщений — контракт.
// Ошибка возвращается только на кривой конфигурации (таймзона, строки "HH:MM"),
// нарушения бизнес-правил копятся в результате.
func Validate(input ValidationInput) (*domain.ValidationResult, error) {
	loc, err := time.LoadLocation(input.Location.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", input.Location.Timezone, err)
	}

	result := domain.NewValidationResult()

	// 1. Конец должен быть позже начала
	if !input.Interval.IsOrdered() {
		result.AddError("End time must be after start time")
	}

	// 2. Окно бронирования
	windowEnd := input.Now.In(loc).AddDate(0, 0, input.BookingWindowDays)
	if input.Interval.Start.After(windowEnd) {
		result.AddError(fmt.Sprintf("Bookings can be made at most %d days in advance", input.BookingWindowDays))
	}

	// 3. Часы работы: и начало, и конец в пределах окна этого дня недели.
	// День без записи в расписании — выходной, обе проверки проваливаются.
	localStart := utils.ToLocal(input.Interval.Start, loc)
	withinHours := false
	if hours, open := input.Court.OpenHoursFor(localStart.Weekday()); open {
		openAt, err := utils.CombineDateAndClock(localStart, hours.Open, loc)
		if err != nil {
			return nil, err
		}
		closeAt, err := utils.CombineDateAndClock(localStart, hours.Close, loc)
		if err != nil {
			return nil, err
		}

		withinHours = !input.Interval.Start.Before(openAt) && !input.Interval.Start.After(closeAt) &&
			!input.Interval.End.Before(openAt) && !input.Interval.End.After(closeAt)
	}
	if !withinHours {
		result.AddError("Booking is outside operating hours")
	}

	// 4. Отсечка по закату для кортов без освещения
	cutoff, hasCutoff, err := resolveCutoff(localStart, input.Court, input.Location, loc)
	if err != nil {
		return nil, err
	}
	if hasCutoff && input.Interval.End.After(cutoff) {
		result.AddError(fmt.Sprintf("Booking must end by %s due to sunset cutoff", utils.FormatClock(cutoff, loc)))
	}

	// 5. Пересечение с бронями на корте
	if hasBookingConflict(input.Interval, input.CourtID, input.Bookings, input.ExcludeBookingID) {
		result.AddError("Booking conflicts with an existing booking")
	}

	// 6. Пересечение с блокировками
	if hasBlockConflict(input.Interval, input.CourtID, input.Blocks) {
		result.AddError("Booking conflicts with a blocked period")
	}

	// 7. Буфер между подтвержденными бронями
	if !respectsBuffer(input.Interval, input.CourtID, input.BufferMinutes, input.Bookings, input.ExcludeBookingID) {
		result.AddError(fmt.Sprintf("Booking must keep a %d minute buffer around existing bookings", input.BufferMinutes))
	}

	// 8. Занятость тренера
	if hasCoachConflict(input.Interval, input.CoachID, input.Bookings, input.ExcludeBookingID) {
		result.AddError("Coach is not available during this time")
	}

	return result, nil
}
