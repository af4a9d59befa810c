package booking_validator_service

import "github.com/suchimauz/court-booking-engine/internal/core/domain"

type SlotSlice []domain.Slot

// quickSort — сортировка слотов по времени начала
func (s SlotSlice) quickSort() SlotSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	less := SlotSlice{}
	equal := SlotSlice{}
	greater := SlotSlice{}

	for _, slot := range s {
		if slot.Interval.Start.Before(pivot.Interval.Start) {
			less = append(less, slot)
		} else if slot.Interval.Start.Equal(pivot.Interval.Start) {
			equal = append(equal, slot)
		} else {
			greater = append(greater, slot)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
